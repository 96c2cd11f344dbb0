package payment

// qrCodes maps bank key -> amount (whole rubles) -> static payment link.
// Entries are pre-generated in the banks' B2B cabinets; amounts without an
// entry have no QR and resolve to not found.
var qrCodes = map[string]map[int]string{
	"sovcombank": {
		500: "https://qr.nspk.ru/AD200035F0DUH05G8CTO9TU18246VMSC?type=02&bank=100000000013&sum=50000&cur=RUB&crc=8FC7",
		1000: "https://qr.nspk.ru/AD20001SUJS2BNVC8JQPQ47P7UHLEN8D?type=02&bank=100000000013&sum=100000&cur=RUB&crc=03CF",
		1500: "https://qr.nspk.ru/BD200027AGDORBUU9LNOKG3RHNJVJ36C?type=02&bank=100000000013&sum=150000&cur=RUB&crc=B501",
		2000: "https://qr.nspk.ru/AD20005ESSIHKG3U846PN75EISQUVSN0?type=02&bank=100000000013&sum=200000&cur=RUB&crc=75CE",
		2500: "https://qr.nspk.ru/AD2000283T1SCG1M8JC9265SFAHMBREI?type=02&bank=100000000013&sum=250000&cur=RUB&crc=E079",
		3000: "https://qr.nspk.ru/AD20003EHA4GJ8V98Q5B0M5FAP2QIUHH?type=02&bank=100000000013&sum=300000&cur=RUB&crc=8E32",
		3500: "https://qr.nspk.ru/BD20003S0FMJIBBF8F5PF6EJ3N2V22UF?type=02&bank=100000000013&sum=350000&cur=RUB&crc=92E5",
		4000: "https://qr.nspk.ru/AD200014770NKLJV9LPOA6HENSQFF70S?type=02&bank=100000000013&sum=400000&cur=RUB&crc=CAA4",
		4500: "https://qr.nspk.ru/AD200010J8SM00P98EBOD1K3A98KRR62?type=02&bank=100000000013&sum=450000&cur=RUB&crc=2A81",
		5000: "https://qr.nspk.ru/BD20001ECKRBFK6J8KMOP6BHMTCLU83D?type=02&bank=100000000013&sum=500000&cur=RUB&crc=E03C",
		5500: "https://qr.nspk.ru/BD20004CHNJ4NO3V8P8QJR96Q543OD91?type=02&bank=100000000013&sum=550000&cur=RUB&crc=861D",
		6000: "https://qr.nspk.ru/BD20002FONGUA01V90OOOI6R2E88JI2S?type=02&bank=100000000013&sum=600000&cur=RUB&crc=D2FD",
		6500: "https://qr.nspk.ru/BD20001L9DGM854A9M2BHIDCNT8ENQOM?type=02&bank=100000000013&sum=650000&cur=RUB&crc=7EB6",
		7000: "https://qr.nspk.ru/BD20000KFB69F9L49SO8DQFKRD6UF5ED?type=02&bank=100000000013&sum=700000&cur=RUB&crc=AEAA",
		7500: "https://qr.nspk.ru/BD2000044JK2M8408E68SR2G979D998H?type=02&bank=100000000013&sum=750000&cur=RUB&crc=C532",
		8000: "https://qr.nspk.ru/BD20003JN7OE7RQE8PN8T0P0QL2UF249?type=02&bank=100000000013&sum=800000&cur=RUB&crc=8044",
		8500: "https://qr.nspk.ru/BD200008LQ4MIKAN9VSP3QIMASH1N8BV?type=02&bank=100000000013&sum=850000&cur=RUB&crc=C3F2",
		9000: "https://qr.nspk.ru/BD200037VI5M70MK8CN86N47MDFVVVTE?type=02&bank=100000000013&sum=900000&cur=RUB&crc=59FA",
		9500: "https://qr.nspk.ru/BD20007QONN27TLA8Q2R1P3SJLAMKOMA?type=02&bank=100000000013&sum=950000&cur=RUB&crc=B049",
		10000: "https://qr.nspk.ru/AD20006SSC2J4ALS8JNAOPS8VBV5QR3M?type=02&bank=100000000013&sum=1000000&cur=RUB&crc=1590",
		10500: "https://qr.nspk.ru/BD2000102GPB37QV93BRTPLFVCUPN5AS?type=02&bank=100000000013&sum=1050000&cur=RUB&crc=78D0",
		11000: "https://qr.nspk.ru/AD20003QCCDTM1VS9CPPVP4FR72P9SMH?type=02&bank=100000000013&sum=1100000&cur=RUB&crc=9A5F",
		11500: "https://qr.nspk.ru/AD200072B49SO4AP8NM8PEINO2E9CV5H?type=02&bank=100000000013&sum=1150000&cur=RUB&crc=6F1E",
		12000: "https://qr.nspk.ru/BD20001460E5AQBA8RRPVNF27SVUH1SM?type=02&bank=100000000013&sum=1200000&cur=RUB&crc=2FA4",
		12500: "https://qr.nspk.ru/BD20005R5C9ML69B9J5OQO79FRDUMJMJ?type=02&bank=100000000013&sum=1250000&cur=RUB&crc=41F4",
		13000: "https://qr.nspk.ru/BD20002C2UF9L57595JBL1TP62ISQ4DR?type=02&bank=100000000013&sum=1300000&cur=RUB&crc=32EE",
		13500: "https://qr.nspk.ru/AD20007EE3SIROEQ8ASRRFR8E4FOO367?type=02&bank=100000000013&sum=1350000&cur=RUB&crc=9A78",
		14000: "https://qr.nspk.ru/BD20000PCCBRE7I48EDBFIHS0SC6GH07?type=02&bank=100000000013&sum=1400000&cur=RUB&crc=75DA",
		14500: "https://qr.nspk.ru/BD20005KU77LQ8PC9P5ACJECTK3L1N0L?type=02&bank=100000000013&sum=1450000&cur=RUB&crc=1291",
		15000: "https://qr.nspk.ru/BD200024M6T0A91L89BBC00E9SORJU59?type=02&bank=100000000013&sum=1500000&cur=RUB&crc=A9CE",
		16000: "https://qr.nspk.ru/BD20004Q8LU5SPE48TUAPJN0CNADVKFF?type=02&bank=100000000013&sum=1600000&cur=RUB&crc=F216",
		17000: "https://qr.nspk.ru/BD20004N5AEGLP808B68A2C68U2UEA29?type=02&bank=100000000013&sum=1700000&cur=RUB&crc=0122",
		18000: "https://qr.nspk.ru/BD200064OGJMLDSR8PG9EF0J7H9C29T5?type=02&bank=100000000013&sum=1800000&cur=RUB&crc=5695",
		19000: "https://qr.nspk.ru/AD20003DU28GCHVF9AEOE7VL6TQEHKCR?type=02&bank=100000000013&sum=1900000&cur=RUB&crc=E1B8",
		20000: "https://qr.nspk.ru/AD20007VQNBVL0L09GBQB98BKP8T5RBV?type=02&bank=100000000013&sum=2000000&cur=RUB&crc=1A95",
		25000: "https://qr.nspk.ru/AD20007KVNVO0AD085MBNFSFI51KQED3?type=02&bank=100000000013&sum=2500000&cur=RUB&crc=F435",
		30000: "https://qr.nspk.ru/BD2000092NBTIPG79QDON0A7HVG2MG4N?type=02&bank=100000000013&sum=3000000&cur=RUB&crc=EAA8",
		35000: "https://qr.nspk.ru/BD200074ICL732SD9R68BGKSVI79CJ10?type=02&bank=100000000013&sum=3500000&cur=RUB&crc=6F9B",
		40000: "https://qr.nspk.ru/AD20000IQ8NI6QFA8MFBGJK2P25KSV2S?type=02&bank=100000000013&sum=4000000&cur=RUB&crc=DECA",
		45000: "https://qr.nspk.ru/AD20003ASB5IM32H8HI9NIO0E400BE52?type=02&bank=100000000013&sum=4500000&cur=RUB&crc=CD4C",
		50000: "https://qr.nspk.ru/AD200047UPA31SRG8LGPVNMB6DOH4QRA?type=02&bank=100000000013&sum=5000000&cur=RUB&crc=FEA3",
	},
	"sber": {
		500: "https://b2b.cbrpay.ru/AS2B003EO04CPDQC9UE94HBVHFN6JJ7I",
		1000: "https://b2b.cbrpay.ru/AS2B001EJU9ICOR482KB5FQKK7AUG8Q5",
		1500: "https://b2b.cbrpay.ru/AS2B0007NT2VTOPA8IIBA67ISLE9C58D",
		2000: "https://b2b.cbrpay.ru/AS2B002DGOVF1PIF8VHAC43JDBMF5MVO",
		2500: "https://b2b.cbrpay.ru/AS2B001KEL5RCAAN8PIQDN4HCNPKLHUS",
		3000: "https://b2b.cbrpay.ru/AS2B00396N0DM6OR9C4B6CG7E5I13TM7",
		3500: "https://b2b.cbrpay.ru/AS2B002AE865QOOG82SB51SG3RKG27FN",
		4000: "https://b2b.cbrpay.ru/AS2B0016GSLE5F3S8GUPTEI5J8SSA0UF",
		4500: "https://b2b.cbrpay.ru/AS2B003BP5COV7118MTO9DFN6D4D2DER",
		5000: "https://b2b.cbrpay.ru/AS2B0066AHIJ9D3M9FQRGINAD9C0QJNR",
		5500: "https://b2b.cbrpay.ru/AS2B0046045VNPSE9S5OH4VL1G7JBNLG",
		6000: "https://b2b.cbrpay.ru/AS2B004FV1KHOROO8KER2TF3CF76AT7D",
		6500: "https://b2b.cbrpay.ru/AS2B002KKCLS5ESP9V2R7JA0CT8R0D6A",
		7000: "https://b2b.cbrpay.ru/AS2B000H0DS7O8KP80KQ4AU37U3MMOE4",
		7500: "https://b2b.cbrpay.ru/AS2B000C5LFHRHQT8UHPU74U2CV1BGPF",
		8000: "https://b2b.cbrpay.ru/AS2B001VU749H5PL903RUDC8F03LTA2F",
		8500: "https://b2b.cbrpay.ru/AS2B0037LAUP1G5J8R6OISMFF5F8J446",
		9000: "https://b2b.cbrpay.ru/AS2B00758FHDODMT9UVO97V0G96MML1I",
		9500: "https://b2b.cbrpay.ru/AS2B006S245B11LE8SRQ2O0C751NSREF",
		10000: "https://b2b.cbrpay.ru/AS2B004CVK5B76CS81IBHOF01FHSFVTC",
		10500: "https://b2b.cbrpay.ru/AS2B007G22KR2N7U9CJ8825R6U9O4FGK",
		11000: "https://b2b.cbrpay.ru/AS2B002Q670QCK0292V8RAMK34V37VSE",
		11500: "https://b2b.cbrpay.ru/AS2B007P7AAHIJNJ97FP8TK4K84P5G95",
		12000: "https://b2b.cbrpay.ru/AS2B001IG49BFIGO8P9A75J2K1LTBNQP",
		12500: "https://b2b.cbrpay.ru/AS2B0018JCGV1I24954AB826JERBBV0A",
		13000: "https://b2b.cbrpay.ru/AS2B003M31JAJ1579F7OMT8Q5LBTSI6C",
		13500: "https://b2b.cbrpay.ru/AS2B004TKQEU8B8G9J4RQ1754QQU93LN",
		14000: "https://b2b.cbrpay.ru/AS2B0077SS131JTG9VMBTFHH4NUHO7FJ",
		14500: "https://b2b.cbrpay.ru/AS2B0011B1C8C1JF92AQRCTI61KKBTGA",
		15000: "https://b2b.cbrpay.ru/AS2B002CNLVRIARR9HIANGA7NRVP7QQQ",
		16000: "https://b2b.cbrpay.ru/AS2B00638S6FOHMH9UT8U0P65SFPCUR8",
		17000: "https://b2b.cbrpay.ru/AS2B0028QOB4M4DO8SV9B5HT41D2R6BA",
		18000: "https://b2b.cbrpay.ru/AS2B007V9AMHDJDR898OFREK8L79AMA5",
		19000: "https://b2b.cbrpay.ru/AS2B0061T14PP0C89IGPD0HFHGRB1RH2",
		20000: "https://b2b.cbrpay.ru/AS2B0014P10SKBUL9SDA24OMFODQFF8H",
		25000: "https://b2b.cbrpay.ru/AS2B003U5618RV5B882QNC8MGV4F9H9C",
		30000: "https://b2b.cbrpay.ru/AS2B00192MTUDK2P83V8HP7GI9JTJH34",
		35000: "https://b2b.cbrpay.ru/AS2B001OMT1HS0EC8IRPLDESUAMHHIGA",
		40000: "https://b2b.cbrpay.ru/AS2B005AE5FP5297868BQ16D777QJ68P",
		45000: "https://b2b.cbrpay.ru/AS2B003IHAKLMOCU8FEO5K1MD9K2RIL3",
		50000: "https://b2b.cbrpay.ru/AS2B002JJJISCA7Q8A4PG4LQSTGRNTNC",
	},
	"vtb": {
		500: "https://b2b.cbrpay.ru/AS2B0044B1P73FAH8JE97DEFN80JEGQR",
		1000: "https://b2b.cbrpay.ru/AS2B002P6HDIQQEE94L9U1MMTU420UGG",
		1500: "https://b2b.cbrpay.ru/AS2B00790ASFMOBI90LRV8DAPS6E9B53",
		2000: "https://b2b.cbrpay.ru/AS2B002S5FEFJ4NM9D8Q7M5PGA1VPR9I",
		2500: "https://b2b.cbrpay.ru/BS2B004H9I2NEFK280IRIVNVGK8O8QVL",
		3000: "https://b2b.cbrpay.ru/BS2B005E6QHCPQ429FU8M2EH4CUPGG83",
		3500: "https://b2b.cbrpay.ru/BS2B0009CR5NPV3H95JPHCFMGGI35CP9",
		4000: "https://b2b.cbrpay.ru/AS2B005JISMST5O38NURH7VKC9RCBDQ6",
		4500: "https://b2b.cbrpay.ru/BS2B00181B9VP6RP88EPONR55CV70KMP",
		5000: "https://b2b.cbrpay.ru/AS2B005GL2G7NFC38ETQOPF8ELI1KKPP",
		5500: "https://b2b.cbrpay.ru/AS2B003J70EL9T8U955BHDVRAMQ2Q88S",
		6000: "https://b2b.cbrpay.ru/BS2B00319CDBR3J28ULRCDUN702CADTR",
		6500: "https://b2b.cbrpay.ru/BS2B006VCOVG3U9097SO8LA8IIU21PTM",
		7000: "https://b2b.cbrpay.ru/AS2B003T1HM4IJIR81A8I8B17T4I8SJI",
		7500: "https://b2b.cbrpay.ru/AS2B002H2ER9P60293BQ5E024ISC27CJ",
		8000: "https://b2b.cbrpay.ru/AS2B000OR6F6LLG09EMB5IN8PLF1TEPA",
		8500: "https://b2b.cbrpay.ru/AS2B003L17RU8QJ38D0QFR0PCEQCDAU4",
		9000: "https://b2b.cbrpay.ru/BS2B003GG852C5OF8BNRITH7AN70I1UB",
		9500: "https://b2b.cbrpay.ru/BS2B000J4HKRM51T85R99IO4JOJV4G0C",
		10000: "https://b2b.cbrpay.ru/AS2B000N2NVEUQPI86UB38A5OOT82AKO",
		10500: "https://b2b.cbrpay.ru/BS2B004DDQCMF6HJ90HOV9OBOJ9TE8EL",
		11000: "https://b2b.cbrpay.ru/AS2B0035R4O978GQ8EG91RTADQ21PFGM",
		11500: "https://b2b.cbrpay.ru/AS2B0072AE066UMG931P4OPHIF6PN2D2",
		12000: "https://b2b.cbrpay.ru/BS2B005GMBNSAD3P9Q4ARJOTV0P7N9V2",
		12500: "https://b2b.cbrpay.ru/AS2B004G4RNDAAKB8JD86OIUOVEQ5UAU",
		13000: "https://b2b.cbrpay.ru/BS2B0013ECPP2HTD8A28HB2DA2OIUCH7",
		13500: "https://b2b.cbrpay.ru/BS2B000UGM22ATRK8459CO6FAQ1Q69K7",
		14000: "https://b2b.cbrpay.ru/AS2B001U5NT750KA8C6ORD3OFPT5P9RQ",
		14500: "https://b2b.cbrpay.ru/AS2B005UG5CU81JG9A5Q52RLD90Q39HH",
		15000: "https://b2b.cbrpay.ru/BS2B00610MGSLA0L9HEO8VEMNDMOQ0RB",
		16000: "https://b2b.cbrpay.ru/BS2B007UQLD59IBT90VBGAJAM7JPARUA",
		17000: "https://b2b.cbrpay.ru/BS2B000N0G43EC929V0B3NRRVK4LKLQO",
		18000: "https://b2b.cbrpay.ru/AS2B0006OKLUL8H19DSA5GV9C258S0UJ",
		19000: "https://b2b.cbrpay.ru/AS2B002TBNFT5SOF80QBA09HNAJ5R4A7",
		20000: "https://b2b.cbrpay.ru/BS2B002HG8T9RP519L7A0E2HCDR8EDIT",
		25000: "https://b2b.cbrpay.ru/BS2B00614BC3P02C8IPA1CKVJF32C3NF",
		30000: "https://b2b.cbrpay.ru/AS2B0051AA1D1J5J9OB8T2O7S1EV27CA",
		35000: "https://b2b.cbrpay.ru/AS2B0009R9LHNTC88NOBL0LTUQC4RTTN",
		40000: "https://b2b.cbrpay.ru/BS2B0073SSON68VV8D9O56UGMGGP25HV",
		45000: "https://b2b.cbrpay.ru/BS2B002M0FS1IT7P8599OHV06780BC70",
		50000: "https://b2b.cbrpay.ru/AS2B001BQ78EI0AO8LIA7FVD1PR86B9F",
	},
	"tbank": {
		500: "https://b2b.cbrpay.ru/AS2B004QSVRARGL690AOACJUOEFPCUMF",
		1000: "https://b2b.cbrpay.ru/BS2B005AHRPESB6783OQ5EL1016T9SEK",
		1500: "https://b2b.cbrpay.ru/AS2B006T2052OUDO8LGO452NESHHHO9B",
		2000: "https://b2b.cbrpay.ru/AS2B002RQJMNQ92J9E3B6VOJRMB9HG3P",
		2500: "https://b2b.cbrpay.ru/BS2B0053GLAETCR69PVQR9NKNBS0OLS9",
		3000: "https://b2b.cbrpay.ru/AS2B00610LB6C9LJ9KLBC84HUCTT4N62",
		3500: "https://b2b.cbrpay.ru/BS2B001BKU84V2H99VQQ448H764O94DV",
		4000: "https://b2b.cbrpay.ru/BS2B007UMADOE5IP8C99D31MA4918440",
		4500: "https://b2b.cbrpay.ru/AS2B0078B1OR8GQN92EPQ58I80V62T1S",
		5000: "https://b2b.cbrpay.ru/AS2B001IQJ7I36238RHA7DJO4EH3QMUU",
		5500: "https://b2b.cbrpay.ru/BS2B002CNVL30U2G8K1PV6360V2U3J4N",
		6000: "https://b2b.cbrpay.ru/BS2B002NDVOKHR3486B8INKF6RE439PA",
		6500: "https://b2b.cbrpay.ru/AS2B007LTONB5ONK9FCO2HE1I0QO5VAA",
		7000: "https://b2b.cbrpay.ru/BS2B001KQN192QGI95GBRI9COCQAIT9O",
		7500: "https://b2b.cbrpay.ru/BS2B0016TA0G143L8NNO9VKAT0CTUEUF",
		8000: "https://b2b.cbrpay.ru/BS2B000RNPIB3Q3P8589GK9N9NUKPJ9K",
		8500: "https://b2b.cbrpay.ru/AS2B002EJ25U7Q2D9RDB9IRBJ9DC4CIJ",
		9000: "https://b2b.cbrpay.ru/AS2B001101027E7J912QIBBHVVLFR10I",
		9500: "https://b2b.cbrpay.ru/AS2B005QPQAI70888MVPN51ICEQSKO43",
		10000: "https://b2b.cbrpay.ru/BS2B002U9HTIL3VA8N19KG10A1DJK77T",
		10500: "https://b2b.cbrpay.ru/AS2B0000MUUBIPLF8B98I9JK8872VIIB",
		11000: "https://b2b.cbrpay.ru/BS2B00457CVM5EV792JQTSFV6IQPJR3M",
		11500: "https://b2b.cbrpay.ru/AS2B000I4I7D7PAA87S8OFNOUCGB5NNQ",
		12000: "https://b2b.cbrpay.ru/AS2B005FCJ18550G940B9M969V4GV75N",
		12500: "https://b2b.cbrpay.ru/BS2B0043OMMIGM7G9IFB08UKT3HB5QVE",
		13000: "https://b2b.cbrpay.ru/BS2B001NFM16C36S8UVAIPFQFF9JA2BH",
		13500: "https://b2b.cbrpay.ru/AS2B007QADPPACBO9HQB5DN24AH3LRF5",
		14000: "https://b2b.cbrpay.ru/AS2B007QADPPACBO9HQB5DN24AH3LRF5",
		14500: "https://b2b.cbrpay.ru/BS2B0064P1FEDGS984RQFH0IBQPM18P8",
		15000: "https://b2b.cbrpay.ru/AS2B004KRPSQNJO59Q9P3P4K7B9Q4LQ1",
		16000: "https://b2b.cbrpay.ru/AS2B0030GM0LF9LQ9RARDG7H4205D5VB",
		17000: "https://b2b.cbrpay.ru/AS2B003QBKUDFG3B8LI9LK10HM6OUHBC",
		18000: "https://b2b.cbrpay.ru/BS2B003BG3E2TGNU84A8HI1R8H97BJ9I",
		19000: "https://b2b.cbrpay.ru/BS2B001MNPMNA39I8RFQQVFEMTUJ84NG",
		20000: "https://b2b.cbrpay.ru/AS2B003686HKA12T8F9R3527GMV6GJH9",
		25000: "https://b2b.cbrpay.ru/BS2B002J2KKDVS5I9MA86FC0P03BO7E0",
		30000: "https://b2b.cbrpay.ru/AS2B002Q8QT5GMPR8F4RTTCEVQ7L6NS3",
		35000: "https://b2b.cbrpay.ru/BS2B001FM5QOPQU88T5832M4SNRDHP4F",
		40000: "https://b2b.cbrpay.ru/BS2B0041J3PK0KTS8JSO1NM1ML3C8AFT",
		45000: "https://b2b.cbrpay.ru/AS2B007J5IQ04S1L85H929R2UN1496UK",
		50000: "https://b2b.cbrpay.ru/AS2B001LSRACR5GS99AB47GNCNDA94F9",
	},
}

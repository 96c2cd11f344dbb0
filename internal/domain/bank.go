package domain

// Bank is display metadata for one supported payment bank. The set of
// banks is compiled into the process, never persisted.
type Bank struct {
	Name string `json:"name"`
	Icon string `json:"icon"`
}

package cpre

// Result is the output of a Run call.
type Result struct {
	// Sources holds the rewritten text for each key of Config.MainSources
	// (or of Config.Sources, when MainSources was empty).
	Sources map[string]string

	// Date, Time and Timestamp carry the values bound to the __DATE__,
	// __TIME__ and __TIMESTAMP__ built-ins during this run.
	Date      string
	Time      string
	Timestamp string
}

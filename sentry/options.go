package sentry

// EventOptions carries the optional context attached to a captured event.
type EventOptions struct {
	Tags        Tags
	Extra       Extra
	Level       *Level
	Fingerprint []string
}

// Tags label an event for search and grouping. Set chains, so call sites
// build them inline: NewTags().Set("command", name).Set("version", v).
type Tags map[string]string

func NewTags() Tags {
	return Tags{}
}

func (t Tags) Set(key, value string) Tags {
	t[key] = value
	return t
}

// Extra holds free-form diagnostic payload, attached to the event but not
// indexed.
type Extra map[string]interface{}

func NewExtra() Extra {
	return Extra{}
}

func (e Extra) Set(key string, value interface{}) Extra {
	e[key] = value
	return e
}

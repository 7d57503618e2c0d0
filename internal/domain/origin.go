package domain

// Origin says which screen a detail request was reached from. It is
// passed explicitly with the request and mapped to a back-navigation
// target; the server holds no flag state between requests.
type Origin string

const (
	OriginUnknown  Origin = ""
	OriginBrowse   Origin = "browse"
	OriginMyEvents Origin = "my-events"
	OriginMessages Origin = "messages"
	OriginHome     Origin = "home"
)

// ParseOrigin maps a request value to a known origin. Anything
// unrecognized, including an absent value, is OriginUnknown.
func ParseOrigin(raw string) Origin {
	switch Origin(raw) {
	case OriginBrowse, OriginMyEvents, OriginMessages, OriginHome:
		return Origin(raw)
	}
	return OriginUnknown
}

// BackTarget is the client route a back action should land on.
// Unknown origins fall back to home.
func (o Origin) BackTarget() string {
	switch o {
	case OriginBrowse:
		return "/browse"
	case OriginMyEvents:
		return "/my-events"
	case OriginMessages:
		return "/messages"
	case OriginHome:
		return "/home"
	}
	return "/home"
}

package events

// EventHandler is the interface of the call back function for receiveing events.
type EventHandler func(Event)

// Event is used to type restrict the Events
type Event interface {
	isEvent()
}

// Trace is useful to see some details of what's going on
type Trace struct {
	ID      string
	Message string
	event
}

// ServerContacted indicates that the catalog service has been successfully
// contacted (received a non-error response).
type ServerContacted struct {
	ID string
	event
}

// ServerError indicates that the catalog service has been contacted but with
// an error returned.
type ServerError struct {
	ID    string
	Error error
	event
}

// CourseResolved indicates that a course record was selected from the
// candidates the catalog service returned.
type CourseResolved struct {
	ID         string
	Course     string
	Candidates int
	event
}

// OverrideMerged indicates that an override document was merged over the
// course record. Keys are the top-level keys it replaced or added.
type OverrideMerged struct {
	Path string
	Keys []string
	event
}

// TemplateLoaded indicates a template was read from disk and parsed.
type TemplateLoaded struct {
	Name string
	Path string
	event
}

// FileRendered indicates a rendered template was committed to disk.
// DidRender is false when the file already had identical contents.
type FileRendered struct {
	Path      string
	DidRender bool
	event
}

// SiteGenerated marks the end of a successful generation run.
type SiteGenerated struct {
	Directory string
	Course    string
	event
}

// Event interface type fulfillment
type event struct{}

func (event) isEvent() {}

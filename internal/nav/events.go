package nav

// Event is the base interface for everything the controller reports to the
// presentation layer. Events are delivered through the dispatch function
// given at construction; preview events originate on worker goroutines.
type Event interface{}

// RootChanged reports that a navigation request was accepted.
type RootChanged struct {
	Path string
}

// NavigationRejected reports a navigation target that is not a directory.
// The current root is unchanged; render as a dismissible notice.
type NavigationRejected struct {
	Path   string
	Reason string
}

// HighlightedInfo carries stat metadata for the highlighted entry. Err is
// set when the entry could not be stat'ed; Meta is zero in that case.
type HighlightedInfo struct {
	Path string
	Meta StatMetadata
	Err  error
}

// PreviewReady carries decoded preview text and its language
// classification for downstream highlighting.
type PreviewReady struct {
	Path     string
	Text     string
	Language string
}

// PreviewUnavailable is the placeholder outcome: the target is not a
// regular file, or reading/decoding it failed. Never an error notice.
type PreviewUnavailable struct {
	Path string
}

// TreeRefresh instructs the tree view to re-fetch listings under Path;
// the matching cache keys have already been invalidated.
type TreeRefresh struct {
	Path string
}

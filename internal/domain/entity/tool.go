package entity

type ToolName string

const (
	ToolGoogleSearch    ToolName = "google_search"
	ToolWikipediaSearch ToolName = "wikipedia_search"
	ToolYoutubeSearch   ToolName = "youtube_search"
	ToolDecodeText      ToolName = "decode_text"
)

func (t ToolName) String() string {
	return string(t)
}

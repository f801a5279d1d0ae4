package model

// ContentBlock is one rendered unit on a course page.
// Type is "heading", "paragraph", "emphasis" or "list"; Items is only
// set for list blocks.
type ContentBlock struct {
	Type  string   `json:"type"`
	Text  string   `json:"text,omitempty"`
	Items []string `json:"items,omitempty"`
}

// ContentSection is the body served for one sub-topic. Sections whose
// title is not in the registry still render, heading only.
type ContentSection struct {
	Title  string         `json:"title"`
	Blocks []ContentBlock `json:"blocks,omitempty"`
}

// ContentTopic is a menu entry: a course level and the sub-topic
// titles it links to.
type ContentTopic struct {
	Level     Level    `json:"level"`
	Title     string   `json:"title"`
	SubTopics []string `json:"subTopics"`
}

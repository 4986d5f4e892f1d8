package model

// CodeLocation points an item at a position in a source file.
type CodeLocation struct {
	FilePath   string `json:"file_path"`
	LineNumber uint32 `json:"line_number"`
}

// Item is the sole persisted entity. The id doubles as the store key.
// Optional fields are pointers so that absence survives a round trip
// through the store; absent is not the same state as empty or zero.
type Item struct {
	ID           string        `json:"id"`
	Type         string        `json:"type"`
	Title        string        `json:"title"`
	Content      *string       `json:"content,omitempty"`
	Tags         []string      `json:"tags"`
	CodeLocation *CodeLocation `json:"code_location,omitempty"`
	CreatedAt    int64         `json:"created_at"`
	Completed    *bool         `json:"completed,omitempty"`
	DueDate      *int64        `json:"due_date,omitempty"`
	StartTime    *int64        `json:"start_time,omitempty"`
	EndTime      *int64        `json:"end_time,omitempty"`
}

// CreateItemRequest carries the client-supplied fields for a new item.
// ID and CreatedAt are always assigned server-side.
type CreateItemRequest struct {
	Type         string        `json:"type"`
	Title        string        `json:"title"`
	Content      *string       `json:"content,omitempty"`
	Tags         []string      `json:"tags,omitempty"`
	CodeLocation *CodeLocation `json:"code_location,omitempty"`
	Completed    *bool         `json:"completed,omitempty"`
	DueDate      *int64        `json:"due_date,omitempty"`
	StartTime    *int64        `json:"start_time,omitempty"`
	EndTime      *int64        `json:"end_time,omitempty"`
}

// ItemPatch is a partial update. Only non-nil fields are applied; the
// struct deliberately has no ID or CreatedAt so those keys in a payload
// are ignored rather than merged.
type ItemPatch struct {
	Type         *string       `json:"type,omitempty"`
	Title        *string       `json:"title,omitempty"`
	Content      *string       `json:"content,omitempty"`
	Tags         []string      `json:"tags,omitempty"`
	CodeLocation *CodeLocation `json:"code_location,omitempty"`
	Completed    *bool         `json:"completed,omitempty"`
	DueDate      *int64        `json:"due_date,omitempty"`
	StartTime    *int64        `json:"start_time,omitempty"`
	EndTime      *int64        `json:"end_time,omitempty"`
}

// CaptureRequest wraps a block of free text for quick capture.
type CaptureRequest struct {
	Text string `json:"text"`
}

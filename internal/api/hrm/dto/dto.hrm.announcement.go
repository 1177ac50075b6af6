package hrmdto

// AnnouncementCreateInput dữ liệu tạo thông báo chung.
type AnnouncementCreateInput struct {
	Title    string `json:"title" validate:"required,min=2,max=256,no_xss"`
	Content  string `json:"content" validate:"required,max=8192,no_xss"`
	AuthorID string `json:"authorId" validate:"omitempty,len=24,hexadecimal"`
	Pinned   bool   `json:"pinned"`
}

// AnnouncementUpdateInput dữ liệu cập nhật thông báo chung (partial update).
type AnnouncementUpdateInput struct {
	Title   *string `json:"title,omitempty" validate:"omitempty,min=2,max=256,no_xss"`
	Content *string `json:"content,omitempty" validate:"omitempty,max=8192,no_xss"`
	Pinned  *bool   `json:"pinned,omitempty"`
}

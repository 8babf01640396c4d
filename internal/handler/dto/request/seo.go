package request

type UpsertSeoRequest struct {
	PageRoute   string  `json:"page_route" binding:"required"`
	Title       string  `json:"title" binding:"required"`
	Description string  `json:"description"`
	Keywords    string  `json:"keywords"`
	OgImage     *string `json:"og_image,omitempty"`
}

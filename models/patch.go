package models

// Patch types describe sparse updates: only non-nil fields are written, and a
// patch with no fields set is a no-op that leaves updated_at untouched.

type ProjectPatch struct {
	Name       *string `json:"name"`
	Whiteboard *string `json:"whiteboard"`
}

func (p ProjectPatch) Empty() bool {
	return p.Name == nil && p.Whiteboard == nil
}

type PromptPatch struct {
	Name        *string `json:"name"`
	Status      *string `json:"status"`
	Content     *string `json:"content"`
	ProjectID   *uint   `json:"project_id"`
	OrderNumber *int    `json:"order_number"`
}

func (p PromptPatch) Empty() bool {
	return p.Name == nil && p.Status == nil && p.Content == nil &&
		p.ProjectID == nil && p.OrderNumber == nil
}

type ItemPatch struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

func (p ItemPatch) Empty() bool {
	return p.Name == nil && p.Description == nil
}

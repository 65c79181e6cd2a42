package constants

// ChecklistItem describes one of the sixteen fixed daily practices. The set is
// closed: adding an item means adding a field to models.Checklist as well.
type ChecklistItem struct {
	ID    string
	Label string
}

// ChecklistItems is the canonical display order of the daily practices.
var ChecklistItems = []ChecklistItem{
	{ID: "dawnPrayer", Label: "새벽 기도"},
	{ID: "morningPrayer", Label: "아침 기도"},
	{ID: "noonPrayer", Label: "낮 기도"},
	{ID: "afternoonPrayer", Label: "오후 기도"},
	{ID: "nightPrayer", Label: "밤 기도"},
	{ID: "worship", Label: "예배"},
	{ID: "exercise", Label: "체조"},
	{ID: "recitation", Label: "암송"},
	{ID: "cleaning", Label: "청소"},
	{ID: "organization", Label: "정리정돈"},
	{ID: "recycling", Label: "분리수거"},
	{ID: "hygiene", Label: "세면 및 양치질"},
	{ID: "doorLightCheck", Label: "문 및 불 점검"},
	{ID: "environmentCheck", Label: "환경점검"},
	{ID: "slowChewing", Label: "천천히 씹기"},
	{ID: "bedsidePrep", Label: "머리맡 준비"},
}

// ChecklistLabel returns the display label for an item id, or the id itself
// if it is unknown.
func ChecklistLabel(id string) string {
	for _, item := range ChecklistItems {
		if item.ID == id {
			return item.Label
		}
	}
	return id
}

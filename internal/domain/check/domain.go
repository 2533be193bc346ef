package check

type Check struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

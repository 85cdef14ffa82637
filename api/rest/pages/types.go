package pages

// values available to index.html
type IndexData struct {
	Model string
}

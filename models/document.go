package models

// DocRef addresses a single document inside a collection.
type DocRef struct {
	Collection string `json:"collection"`
	ID         string `json:"id"`
}

// Path returns the slash-delimited path of the document.
func (r DocRef) Path() string {
	return r.Collection + "/" + r.ID
}

// Document is a remote document: its id plus its stored fields.
type Document struct {
	ID   string `json:"id"`
	Data Item   `json:"data"`
}

// Item returns a deep copy of the document data with the document id written
// into the "id" field. The original "id" field, if any, is overwritten.
func (d Document) Item() Item {
	item := d.Data.DeepCopy()
	if item == nil {
		item = Item{}
	}
	item[FieldID] = d.ID
	return item
}

// Page is the result of a one-shot query.
type Page struct {
	Docs []Document `json:"docs"`
}

// Len returns the number of documents in the page.
func (p Page) Len() int {
	return len(p.Docs)
}

// Last returns the last document of the page.
func (p Page) Last() (Document, bool) {
	if len(p.Docs) == 0 {
		return Document{}, false
	}
	return p.Docs[len(p.Docs)-1], true
}

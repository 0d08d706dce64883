package book

// DefaultPageSize is used when a page size is not given.
const DefaultPageSize = 5

// Page selects a window of results using offset+limit pagination.
// Pages are numbered from 1.
type Page struct {
	Number int
	Size   int
}

// Normalize clamps the page number to 1 and fills in the default size.
func (p Page) Normalize() Page {
	if p.Number < 1 {
		p.Number = 1
	}
	if p.Size < 1 {
		p.Size = DefaultPageSize
	}
	return p
}

// Offset returns how many documents precede the page.
func (p Page) Offset() int {
	p = p.Normalize()
	return (p.Number - 1) * p.Size
}

// Apply sets the limit and offset of q to select this page.
func (p Page) Apply(q Query) Query {
	p = p.Normalize()
	q.Limit = p.Size
	q.Offset = p.Offset()
	return q
}

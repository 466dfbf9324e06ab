package domain

// Selection is a tagged choice for the picker dropdowns. The zero value
// selects everything; a non-zero ID narrows to a single record. It replaces
// the stringly "all"/"allShows" sentinels at the state-machine boundary.
type Selection struct {
	id int64
}

// AllSelection returns the selection covering every record.
func AllSelection() Selection { return Selection{} }

// SelectOne returns a selection narrowed to one record id.
func SelectOne(id int64) Selection { return Selection{id: id} }

// IsAll reports whether the selection covers every record.
func (s Selection) IsAll() bool { return s.id == 0 }

// ID returns the selected record id; only meaningful when !IsAll().
func (s Selection) ID() int64 { return s.id }

package roster

// defaultEntries is the hand-maintained front-end roster. Names must match the
// upstream spelling exactly.
var defaultEntries = []Entry{
	{ID: 1, Name: "Jacksonville Jaguars D/ST"},
	{ID: 2, Name: "Jalen Hurts"},
	{ID: 3, Name: "Puka Nacua"},
	{ID: 4, Name: "George Pickens"},
	{ID: 5, Name: "Bijan Robinson"},
	{ID: 6, Name: "Jaylen Warren"},
	{ID: 7, Name: "Jake Ferguson"},
	{ID: 8, Name: "Zach Charbonnet"},
	{ID: 9, Name: "Kenneth Gainwell"},
	{ID: 10, Name: "Chris Boswell"},
	{ID: 11, Name: "Bucky Irving"},
	{ID: 12, Name: "Mark Andrews"},
	{ID: 13, Name: "Michael Pittman Jr."},
	{ID: 14, Name: "J.K. Dobbins"},
	{ID: 15, Name: "Jared Goff"},
	{ID: 16, Name: "J.J. McCarthy"},
	{ID: 17, Name: "T. Hunter"},
}

// Default returns the built-in roster table.
func Default() *Table {
	t, err := New(defaultEntries)
	if err != nil {
		panic(err)
	}
	return t
}

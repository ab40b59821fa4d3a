package catalog

// movies is the compiled-in dataset. It is the single source for both the
// filterable view and the fact projection.
var movies = []Movie{
	{"Interstellar", SciFi, 2014, 8.6},
	{"Blade Runner 2049", SciFi, 2017, 8.0},
	{"The Matrix", SciFi, 1999, 8.7},
	{"Inception", SciFi, 2010, 8.8},
	{"Alien", SciFi, 1979, 8.4},
	{"Ex Machina", SciFi, 2014, 7.7},
	{"The Godfather", Drama, 1972, 9.2},
	{"Forrest Gump", Drama, 1994, 8.8},
	{"Schindler's List", Drama, 1993, 8.9},
	{"The Shawshank Redemption", Drama, 1994, 9.3},
	{"Goodfellas", Drama, 1990, 8.7},
	{"Pulp Fiction", Action, 1994, 8.9},
	{"Die Hard", Action, 1988, 8.2},
	{"Mad Max Fury Road", Action, 2015, 8.1},
	{"John Wick", Action, 2014, 7.4},
	{"The Dark Knight", Action, 2008, 9.0},
	{"The Grand Budapest Hotel", Comedy, 2014, 8.1},
	{"Superbad", Comedy, 2007, 7.6},
	{"Anchorman", Comedy, 2004, 7.2},
	{"The Big Lebowski", Comedy, 1998, 8.1},
	{"The Conjuring", Horror, 2013, 7.5},
	{"Hereditary", Horror, 2018, 7.3},
	{"Get Out", Horror, 2017, 7.7},
	{"The Witch", Horror, 2015, 6.9},
}

// Default returns the fixed 24-movie catalog.
func Default() *Catalog {
	c, err := New(movies...)
	if err != nil {
		panic("catalog: invalid built-in dataset: " + err.Error())
	}
	return c
}

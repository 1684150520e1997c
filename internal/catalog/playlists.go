package catalog

func mustProject(id string) Project {
	p := ProjectByID(id)
	if p == nil {
		panic("catalog: unknown project id " + id)
	}
	return *p
}

// playlists are built from the project catalog at init. Slice order is
// sidebar order; track order within a playlist drives next/previous.
var playlists []Playlist

func init() {
	playlists = []Playlist{
		{
			Name:        "Top Hits",
			Icon:        "♫",
			Description: "The work I would put on a billboard.",
			Image:       "covers/top-hits.png",
			Projects: []Project{
				mustProject("checkout-rewrite"),
				mustProject("ingest-pipeline"),
				mustProject("a11y-audit"),
				mustProject("joshify"),
			},
		},
		{
			Name:        "Hark",
			Icon:        "◆",
			Employer:    true,
			Description: "Three years on the web platform team.",
			Image:       "covers/hark.png",
			Projects: []Project{
				mustProject("checkout-rewrite"),
				mustProject("a11y-audit"),
				mustProject("design-tokens"),
				mustProject("perf-budget"),
			},
		},
		{
			Name:        "Meridian Labs",
			Icon:        "◆",
			Employer:    true,
			Description: "Data platform and developer experience.",
			Image:       "covers/meridian.png",
			Projects: []Project{
				mustProject("ingest-pipeline"),
				mustProject("query-planner"),
				mustProject("terraform-modules"),
			},
		},
		{
			Name:        "Side Quests",
			Icon:        "✦",
			Description: "Nights, weekends, and things that escaped containment.",
			Image:       "covers/side-quests.png",
			Projects: []Project{
				mustProject("joshify"),
				mustProject("lyric-lab"),
				mustProject("schema-sync"),
			},
		},
		{
			Name:        "Deep Cuts",
			Icon:        "♪",
			Description: "Infrastructure work nobody sees until it breaks.",
			Image:       "covers/deep-cuts.png",
			Projects: []Project{
				mustProject("terraform-modules"),
				mustProject("schema-sync"),
				mustProject("ingest-pipeline"),
			},
		},
	}
}

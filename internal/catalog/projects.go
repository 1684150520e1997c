package catalog

// Album categories.
const (
	AlbumWebPlatform Album = "Web Platform"
	AlbumDevTools    Album = "Developer Tools"
	AlbumDataInfra   Album = "Data & Infrastructure"
	AlbumOpenSource  Album = "Open Source"
)

// Skills.
const (
	SkillTypeScript Skill = "TypeScript"
	SkillReact      Skill = "React"
	SkillGo         Skill = "Go"
	SkillPostgres   Skill = "PostgreSQL"
	SkillRedis      Skill = "Redis"
	SkillKubernetes Skill = "Kubernetes"
	SkillGraphQL    Skill = "GraphQL"
	SkillDesign     Skill = "Design Systems"
	SkillAccess     Skill = "Accessibility"
	SkillPerf       Skill = "Performance"
	SkillTerraform  Skill = "Terraform"
	SkillPython     Skill = "Python"
)

var projects = []Project{
	{
		ID:          "joshify",
		Title:       "Joshify",
		Artist:      "Josh",
		Album:       AlbumOpenSource,
		Duration:    "3:42",
		Image:       "covers/joshify.png",
		Year:        2024,
		Impact:      "The site you are looking at",
		Description: "A portfolio styled as a music streaming client. Projects are tracks, employers are artists, and the back button actually works.",
		Skills:      []Skill{SkillReact, SkillTypeScript, SkillDesign},
		DemoURL:     "https://joshify.dev",
		GithubURL:   "https://github.com/joshify/joshify",
		Canvas:      "canvas/joshify.mp4",
		AlbumArtBasedOn: "In Rainbows — Radiohead",
		MusicFile:   "audio/joshify.mp3",
		Lyrics: Lyrics{
			Genius:  "I built a mirror out of playlists / every commit a verse",
			Literal: "A single-page app with a persistent player and history-aware navigation.",
		},
	},
	{
		ID:          "checkout-rewrite",
		Title:       "Checkout Rewrite",
		Artist:      "Hark",
		Album:       AlbumWebPlatform,
		Duration:    "4:18",
		Image:       "covers/checkout.png",
		Year:        2023,
		Impact:      "+11% conversion",
		Description: "Rebuilt the payment flow as a resumable state machine, halving abandonment on flaky connections.",
		Skills:      []Skill{SkillTypeScript, SkillReact, SkillPerf},
		DemoURL:     "https://hark.example/checkout",
		Canvas:      "canvas/checkout.mp4",
		AlbumArtBasedOn: "Discovery — Daft Punk",
		MusicFile:   "audio/checkout.mp3",
		Lyrics: Lyrics{
			Genius:  "Card declined but the cart remembers / retry me one more time",
			Literal: "Client-side checkout state survives reloads and resumes mid-payment.",
		},
	},
	{
		ID:          "design-tokens",
		Title:       "Design Tokens Pipeline",
		Artist:      "Hark",
		Album:       AlbumDevTools,
		Duration:    "2:57",
		Image:       "covers/tokens.png",
		Year:        2023,
		Impact:      "4 platforms, 1 source",
		Description: "Single-source design tokens compiled to web, iOS, Android and email themes.",
		Skills:      []Skill{SkillDesign, SkillTypeScript},
		GithubURL:   "https://github.com/hark/tokens",
		AlbumArtBasedOn: "Unknown Pleasures — Joy Division",
		MusicFile:   "audio/tokens.mp3",
		Lyrics: Lyrics{
			Genius:  "One palette to rule the brand / compiled four ways",
			Literal: "A build step turns a YAML palette into four platform theme bundles.",
		},
	},
	{
		ID:          "ingest-pipeline",
		Title:       "Event Ingest Pipeline",
		Artist:      "Meridian Labs",
		Album:       AlbumDataInfra,
		Duration:    "5:03",
		Image:       "covers/ingest.png",
		Year:        2022,
		Impact:      "2M events/min",
		Description: "Horizontally scaled ingestion with idempotent replay and per-tenant backpressure.",
		Skills:      []Skill{SkillGo, SkillRedis, SkillKubernetes},
		AlbumArtBasedOn: "Music for Airports — Brian Eno",
		MusicFile:   "audio/ingest.mp3",
		Lyrics: Lyrics{
			Genius:  "Two million heartbeats a minute / none of them dropped",
			Literal: "Sharded consumers drain a replicated log with at-least-once delivery.",
		},
	},
	{
		ID:          "query-planner",
		Title:       "Query Planner Visualizer",
		Artist:      "Meridian Labs",
		Album:       AlbumDevTools,
		Duration:    "3:26",
		Image:       "covers/planner.png",
		Year:        2022,
		Impact:      "Cut debug time ~60%",
		Description: "Interactive EXPLAIN tree explorer with cost heatmaps for the analytics warehouse.",
		Skills:      []Skill{SkillPostgres, SkillReact, SkillGraphQL},
		DemoURL:     "https://meridian.example/planner",
		Canvas:      "canvas/planner.mp4",
		AlbumArtBasedOn: "Kid A — Radiohead",
		MusicFile:   "audio/planner.mp3",
		Lyrics: Lyrics{
			Genius:  "Sequential scan, my old friend / the heatmap glows red again",
			Literal: "Renders query plans as navigable trees with per-node cost shading.",
		},
	},
	{
		ID:          "terraform-modules",
		Title:       "Infra Module Registry",
		Artist:      "Meridian Labs",
		Album:       AlbumDataInfra,
		Duration:    "4:44",
		Image:       "covers/registry.png",
		Year:        2021,
		Impact:      "30+ teams onboarded",
		Description: "Versioned, policy-checked Terraform modules behind an internal registry.",
		Skills:      []Skill{SkillTerraform, SkillGo, SkillKubernetes},
		AlbumArtBasedOn: "Remain in Light — Talking Heads",
		MusicFile:   "audio/registry.mp3",
		Lyrics: Lyrics{
			Genius:  "Plan, apply, repeat / the drift detector never sleeps",
			Literal: "CI validates every module release against org policy before publish.",
		},
	},
	{
		ID:          "a11y-audit",
		Title:       "Accessibility Overhaul",
		Artist:      "Hark",
		Album:       AlbumWebPlatform,
		Duration:    "3:11",
		Image:       "covers/a11y.png",
		Year:        2024,
		Impact:      "WCAG 2.2 AA",
		Description: "Screen-reader-first rebuild of the core product surfaces, with an automated regression gate.",
		Skills:      []Skill{SkillAccess, SkillReact, SkillTypeScript},
		AlbumArtBasedOn: "Blue — Joni Mitchell",
		MusicFile:   "audio/a11y.mp3",
		Lyrics: Lyrics{
			Genius:  "Every label finally speaks / the focus ring comes home",
			Literal: "Landmarks, live regions and focus management across the whole app shell.",
		},
	},
	{
		ID:          "lyric-lab",
		Title:       "Lyric Lab",
		Artist:      "Josh",
		Album:       AlbumOpenSource,
		Duration:    "2:38",
		Image:       "covers/lyriclab.png",
		Year:        2023,
		Impact:      "1.2k GitHub stars",
		Description: "Markov-chain lyric generator with rhyme-scheme constraints, built as a weekend experiment that escaped.",
		Skills:      []Skill{SkillPython, SkillGo},
		GithubURL:   "https://github.com/joshify/lyric-lab",
		Canvas:      "canvas/lyriclab.mp4",
		AlbumArtBasedOn: "OK Computer — Radiohead",
		MusicFile:   "audio/lyriclab.mp3",
		Lyrics: Lyrics{
			Genius:  "I taught a robot to rhyme / it only writes about deadlines",
			Literal: "Generates plausible lyrics from a corpus with constrained sampling.",
		},
	},
	{
		ID:          "perf-budget",
		Title:       "Performance Budget Bot",
		Artist:      "Hark",
		Album:       AlbumDevTools,
		Duration:    "3:05",
		Image:       "covers/perfbot.png",
		Year:        2022,
		Impact:      "LCP −38%",
		Description: "CI bot that bisects bundle regressions and comments the offending import chain on the PR.",
		Skills:      []Skill{SkillPerf, SkillTypeScript},
		GithubURL:   "https://github.com/hark/perf-budget-bot",
		AlbumArtBasedOn: "Homework — Daft Punk",
		MusicFile:   "audio/perfbot.mp3",
		Lyrics: Lyrics{
			Genius:  "Forty kilobytes too heavy / the bot knows who to blame",
			Literal: "Fails builds that exceed the per-route byte budget, with attribution.",
		},
	},
	{
		ID:          "schema-sync",
		Title:       "Schema Sync",
		Artist:      "Josh",
		Album:       AlbumOpenSource,
		Duration:    "4:01",
		Image:       "covers/schemasync.png",
		Year:        2021,
		Impact:      "Zero-downtime migrations",
		Description: "Declarative Postgres migration tool that plans reversible schema diffs.",
		Skills:      []Skill{SkillGo, SkillPostgres},
		GithubURL:   "https://github.com/joshify/schema-sync",
		AlbumArtBasedOn: "Selected Ambient Works — Aphex Twin",
		MusicFile:   "audio/schemasync.mp3",
		Lyrics: Lyrics{
			Genius:  "ALTER TABLE, gently now / the rollback is a promise",
			Literal: "Diffs a desired schema against live and emits ordered, reversible DDL.",
		},
	},
}

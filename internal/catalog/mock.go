package catalog

// Mock catalog data used until a real upstream content source is wired in.

var mockPremiers = []ContentItem{
	{
		ID:       "1",
		Title:    "Petersburg Holidays",
		Type:     ContentTypeMovie,
		Rating:   8.1,
		Poster:   "https://images.unsplash.com/photo-1513475382585-d06e58bcb0e0?w=800&h=1200&fit=crop",
		Backdrop: "https://images.unsplash.com/photo-1513475382585-d06e58bcb0e0?w=1920&h=1080&fit=crop",
		Year:     2024,
		Genres:   []string{"Drama", "Romance"},
	},
	{
		ID:       "2",
		Title:    "Our Own",
		Type:     ContentTypeMovie,
		Rating:   8.1,
		Poster:   "https://images.unsplash.com/photo-1547036967-23d11aacaee0?w=800&h=1200&fit=crop",
		Backdrop: "https://images.unsplash.com/photo-1547036967-23d11aacaee0?w=1920&h=1080&fit=crop",
		Year:     2024,
		Genres:   []string{"War", "Drama"},
	},
	{
		ID:     "3",
		Title:  "Mystery of the Night",
		Type:   ContentTypeMovie,
		Rating: 7.8,
		Poster: "https://images.unsplash.com/photo-1489599849927-2ee91cede3ba?w=800&h=1200&fit=crop",
		Year:   2024,
		Genres: []string{"Thriller", "Detective"},
	},
}

var mockPopular = []ContentItem{
	{
		ID:     "4",
		Title:  "Rodnina",
		Type:   ContentTypeSeries,
		Rating: 8.1,
		Poster: "https://images.unsplash.com/photo-1518676590629-3dcbd9c5a5c9?w=400&h=600&fit=crop",
		Year:   2024,
		Genres: []string{"Drama"},
	},
	{
		ID:     "5",
		Title:  "Knock on My Door 2",
		Type:   ContentTypeSeries,
		Rating: 8.1,
		Poster: "https://images.unsplash.com/photo-1516975080664-ed2fc6a32937?w=400&h=600&fit=crop",
		Year:   2024,
		Genres: []string{"Romance"},
	},
	{
		ID:     "6",
		Title:  "Tanya and the Cosmonaut",
		Type:   ContentTypeSeries,
		Rating: 8.1,
		Poster: "https://images.unsplash.com/photo-1451187580459-43490279c0fa?w=400&h=600&fit=crop",
		Year:   2024,
		Genres: []string{"Comedy", "Romance"},
	},
	{
		ID:     "7",
		Title:  "Freaky Friday 2",
		Type:   ContentTypeSeries,
		Rating: 8.1,
		Poster: "https://images.unsplash.com/photo-1536440136628-849c177e76a1?w=400&h=600&fit=crop",
		Year:   2024,
		Genres: []string{"Comedy"},
	},
	{
		ID:     "8",
		Title:  "Deerslayer",
		Type:   ContentTypeSeries,
		Rating: 8.0,
		Poster: "https://images.unsplash.com/photo-1485846234645-a62644f84728?w=400&h=600&fit=crop",
		Year:   2024,
		Genres: []string{"Action", "Adventure"},
	},
}

var mockKids = []ContentItem{
	{
		ID:          "k1",
		Title:       "Moonzy and Friends",
		Type:        ContentTypeSeries,
		Rating:      8.5,
		Poster:      "https://images.unsplash.com/photo-1578662996442-48f60103fc96?w=400&h=600&fit=crop",
		Backdrop:    "https://images.unsplash.com/photo-1578662996442-48f60103fc96?w=1920&h=1080&fit=crop",
		Year:        2021,
		Duration:    "21 min",
		Genres:      []string{"Animation", "Family"},
		Description: "An animated series about a curious moon creature, aimed at a general audience.",
	},
	{
		ID:     "k2",
		Title:  "Masha and the Bear",
		Type:   ContentTypeSeries,
		Rating: 8.3,
		Poster: "https://images.unsplash.com/photo-1594736797933-d0501ba2fe65?w=400&h=600&fit=crop",
		Year:   2023,
		Genres: []string{"Animation", "Comedy"},
	},
	{
		ID:     "k3",
		Title:  "Winx Club",
		Type:   ContentTypeSeries,
		Rating: 7.9,
		Poster: "https://images.unsplash.com/photo-1618336753974-aae8e04506aa?w=400&h=600&fit=crop",
		Year:   2022,
		Genres: []string{"Animation", "Fantasy"},
	},
	{
		ID:     "k4",
		Title:  "The Smurfs",
		Type:   ContentTypeMovie,
		Rating: 7.5,
		Poster: "https://images.unsplash.com/photo-1509281373149-e957c6296406?w=400&h=600&fit=crop",
		Year:   2023,
		Genres: []string{"Animation", "Adventure"},
	},
	{
		ID:     "k5",
		Title:  "Barbie: Adventures",
		Type:   ContentTypeMovie,
		Rating: 7.2,
		Poster: "https://images.unsplash.com/photo-1558618666-fcd25c85cd64?w=400&h=600&fit=crop",
		Year:   2024,
		Genres: []string{"Animation", "Adventure"},
	},
}

var mockFreeExtra = []ContentItem{
	{
		ID:     "f1",
		Title:  "The Documentary",
		Type:   ContentTypeMovie,
		Rating: 8.0,
		Poster: "https://images.unsplash.com/photo-1485846234645-a62644f84728?w=400&h=600&fit=crop",
		Year:   2024,
		Genres: []string{"Documentary"},
	},
	{
		ID:     "f2",
		Title:  "Cinema Classics",
		Type:   ContentTypeMovie,
		Rating: 9.1,
		Poster: "https://images.unsplash.com/photo-1536440136628-849c177e76a1?w=400&h=600&fit=crop",
		Year:   1994,
		Genres: []string{"Drama", "Classics"},
	},
}

var mockCollections = []Collection{
	{ID: "c1", Name: "Movies", Slug: "movies", Gradient: "from-red-600 to-pink-600", Image: "https://images.unsplash.com/photo-1536440136628-849c177e76a1?w=400&h=300&fit=crop"},
	{ID: "c2", Name: "Series", Slug: "series", Gradient: "from-purple-600 to-pink-500", Image: "https://images.unsplash.com/photo-1522869635100-9f4c5e86aa37?w=400&h=300&fit=crop"},
	{ID: "c3", Name: "Shows", Slug: "shows", Gradient: "from-slate-600 to-slate-700", Image: "https://images.unsplash.com/photo-1598387993441-a364f854c3e1?w=400&h=300&fit=crop"},
	{ID: "c4", Name: "Popular Movies", Slug: "popular-movies", Gradient: "from-yellow-500 to-orange-500"},
	{ID: "c5", Name: "Adventures", Slug: "adventures", Gradient: "from-fuchsia-500 to-purple-600"},
	{ID: "c6", Name: "Popular Series", Slug: "popular-series", Gradient: "from-cyan-500 to-blue-600"},
	{ID: "c7", Name: "Sport", Slug: "sport", Gradient: "from-green-500 to-emerald-600"},
	{ID: "c8", Name: "Documentaries", Slug: "documentary", Gradient: "from-indigo-500 to-violet-600"},
	{ID: "c9", Name: "For Kids", Slug: "kids", Gradient: "from-orange-400 to-amber-500"},
}

var mockSportEvents = []SportEvent{
	{
		ID:    "s1",
		Title: "Chelsea - Real Madrid",
		Teams: &Teams{
			Home:     "Chelsea",
			Away:     "Real Madrid",
			HomeLogo: "https://upload.wikimedia.org/wikipedia/en/c/cc/Chelsea_FC.svg",
			AwayLogo: "https://upload.wikimedia.org/wikipedia/en/5/56/Real_Madrid_CF.svg",
		},
		League: "UEFA Champions League",
		Date:   "Today",
		Time:   "17:20",
		IsLive: true,
		Poster: "https://images.unsplash.com/photo-1522778119026-d647f0596c20?w=1600&h=900&fit=crop",
	},
	{
		ID:     "s2",
		Title:  "UFC: Makhachev - Maddalena",
		League: "UFC",
		Date:   "November 27",
		Time:   "11:10",
		Poster: "https://images.unsplash.com/photo-1549719386-74dfcbf7dbed?w=400&h=300&fit=crop",
	},
	{
		ID:    "s3",
		Title: "Tottenham - Liverpool",
		Teams: &Teams{
			Home:     "Tottenham",
			Away:     "Liverpool",
			HomeLogo: "https://upload.wikimedia.org/wikipedia/en/b/b4/Tottenham_Hotspur.svg",
			AwayLogo: "https://upload.wikimedia.org/wikipedia/en/0/0c/Liverpool_FC.svg",
		},
		League: "Premier League",
		Date:   "December 3",
		Time:   "16:40",
		Poster: "https://images.unsplash.com/photo-1508098682722-e99c43a406b2?w=1600&h=900&fit=crop",
	},
	{
		ID:    "s4",
		Title: "Manchester United - Chelsea",
		Teams: &Teams{
			Home:     "Manchester United",
			Away:     "Chelsea",
			HomeLogo: "https://upload.wikimedia.org/wikipedia/en/7/7a/Manchester_United_FC_crest.svg",
			AwayLogo: "https://upload.wikimedia.org/wikipedia/en/c/cc/Chelsea_FC.svg",
		},
		League: "Premier League",
		Date:   "December 3",
		Time:   "18:30",
		Poster: "https://images.unsplash.com/photo-1461896836934-ffe607ba8211?w=1600&h=900&fit=crop",
	},
}

var mockTVChannels = []TVChannel{
	{ID: "tv1", Name: "Channel One", Category: "General", CurrentProgram: "News"},
	{ID: "tv2", Name: "Russia 1", Category: "General", CurrentProgram: "Vesti"},
	{ID: "tv3", Name: "NTV", Category: "General", CurrentProgram: "Today"},
	{ID: "tv4", Name: "Match TV", Category: "Sport", CurrentProgram: "Football"},
	{ID: "tv5", Name: "Carousel", Category: "Kids", CurrentProgram: "Cartoons"},
	{ID: "tv6", Name: "Culture", Category: "General", CurrentProgram: "Documentary"},
}

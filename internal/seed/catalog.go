// Package seed holds the fixed catalog inserted on first boot when the
// movies table is empty.
package seed

import "github.com/reelcritic/core/internal/model"

func Catalog() []model.Movie {
	return []model.Movie{
		// Hindi
		{
			Title:       "Adipurush",
			Genre:       "Action, Drama, Mythology",
			Language:    model.LanguageHindi,
			PosterURL:   "https://images.unsplash.com/photo-1578662996442-48f60103fc96?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=600",
			Description: "A modern adaptation of the epic Ramayana",
			ReleaseYear: 2023,
			Rating:      7.2,
		},
		{
			Title:       "Dangal",
			Genre:       "Biography, Drama, Sport",
			Language:    model.LanguageHindi,
			PosterURL:   "https://images.unsplash.com/photo-1544551763-46a013bb70d5?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=600",
			Description: "A former wrestler trains his daughters to become world-class wrestlers",
			ReleaseYear: 2016,
			Rating:      8.9,
		},
		{
			Title:       "3 Idiots",
			Genre:       "Comedy, Drama",
			Language:    model.LanguageHindi,
			PosterURL:   "https://images.unsplash.com/photo-1522202176988-66273c2fd55f?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=600",
			Description: "Two friends search for their long-lost companion after graduation",
			ReleaseYear: 2009,
			Rating:      8.4,
		},
		{
			Title:       "Lagaan",
			Genre:       "Drama, Musical, Sport",
			Language:    model.LanguageHindi,
			PosterURL:   "https://images.unsplash.com/photo-1489599063536-f1b3c0fc71a4?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=600",
			Description: "Villagers accept a challenge from British officers to play cricket to avoid taxes",
			ReleaseYear: 2001,
			Rating:      8.6,
		},
		{
			Title:       "Taare Zameen Par",
			Genre:       "Drama, Family",
			Language:    model.LanguageHindi,
			PosterURL:   "https://images.unsplash.com/photo-1522202176988-66273c2fd55f?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=600",
			Description: "A teacher helps a dyslexic child discover his potential",
			ReleaseYear: 2007,
			Rating:      8.4,
		},
		{
			Title:       "Gully Boy",
			Genre:       "Drama, Musical",
			Language:    model.LanguageHindi,
			PosterURL:   "https://images.unsplash.com/photo-1493225457124-a3eb161ffa5f?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=600",
			Description: "A street rapper from Mumbai's slums pursues his dream",
			ReleaseYear: 2019,
			Rating:      7.9,
		},
		{
			Title:       "Article 15",
			Genre:       "Crime, Drama, Thriller",
			Language:    model.LanguageHindi,
			PosterURL:   "https://images.unsplash.com/photo-1489599063536-f1b3c0fc71a4?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=600",
			Description: "A police officer investigates the disappearance of three girls in rural India",
			ReleaseYear: 2019,
			Rating:      8.1,
		},
		{
			Title:       "Andhadhun",
			Genre:       "Crime, Thriller, Comedy",
			Language:    model.LanguageHindi,
			PosterURL:   "https://images.unsplash.com/photo-1489599063536-f1b3c0fc71a4?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=600",
			Description: "A blind pianist becomes embroiled in a murder mystery",
			ReleaseYear: 2018,
			Rating:      8.2,
		},
		{
			Title:       "Zindagi Na Milegi Dobara",
			Genre:       "Adventure, Comedy, Drama",
			Language:    model.LanguageHindi,
			PosterURL:   "https://images.unsplash.com/photo-1506905925346-21bda4d32df4?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=600",
			Description: "Three friends on a bachelor trip across Spain",
			ReleaseYear: 2011,
			Rating:      8.2,
		},
		{
			Title:       "Dil Chahta Hai",
			Genre:       "Comedy, Drama, Romance",
			Language:    model.LanguageHindi,
			PosterURL:   "https://images.unsplash.com/photo-1522202176988-66273c2fd55f?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=600",
			Description: "Three friends with different perspectives on love and relationships",
			ReleaseYear: 2001,
			Rating:      8.1,
		},

		// Tamil
		{
			Title:       "Master",
			Genre:       "Action, Thriller, Crime",
			Language:    model.LanguageTamil,
			PosterURL:   "https://images.unsplash.com/photo-1489599063536-f1b3c0fc71a4?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=600",
			Description: "A young professor takes on a juvenile detention center",
			ReleaseYear: 2021,
			Rating:      8.1,
		},
		{
			Title:       "Vikram",
			Genre:       "Action, Crime, Thriller",
			Language:    model.LanguageTamil,
			PosterURL:   "https://images.unsplash.com/photo-1489599063536-f1b3c0fc71a4?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=600",
			Description: "Members of a black ops team must track and eliminate a gang of masked murderers",
			ReleaseYear: 2022,
			Rating:      8.4,
		},
		{
			Title:       "Super Deluxe",
			Genre:       "Drama, Thriller",
			Language:    model.LanguageTamil,
			PosterURL:   "https://images.unsplash.com/photo-1489599063536-f1b3c0fc71a4?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=600",
			Description: "An anthology of interconnected stories in Chennai",
			ReleaseYear: 2019,
			Rating:      8.3,
		},
		{
			Title:       "Kaala",
			Genre:       "Action, Drama",
			Language:    model.LanguageTamil,
			PosterURL:   "https://images.unsplash.com/photo-1489599063536-f1b3c0fc71a4?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=600",
			Description: "A slum lord fights against gentrification and oppression",
			ReleaseYear: 2018,
			Rating:      7.3,
		},
		{
			Title:       "Enthiran",
			Genre:       "Action, Romance, Sci-Fi",
			Language:    model.LanguageTamil,
			PosterURL:   "https://images.unsplash.com/photo-1518709268805-4e9042af2176?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=600",
			Description: "A scientist creates an android that becomes self-aware",
			ReleaseYear: 2010,
			Rating:      7.1,
		},
		{
			Title:       "Asuran",
			Genre:       "Action, Drama",
			Language:    model.LanguageTamil,
			PosterURL:   "https://images.unsplash.com/photo-1489599063536-f1b3c0fc71a4?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=600",
			Description: "A farmer's family faces caste-based violence and seeks justice",
			ReleaseYear: 2019,
			Rating:      8.4,
		},
		{
			Title:       "96",
			Genre:       "Drama, Romance",
			Language:    model.LanguageTamil,
			PosterURL:   "https://images.unsplash.com/photo-1489599063536-f1b3c0fc71a4?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=600",
			Description: "Former classmates meet after 22 years at a school reunion",
			ReleaseYear: 2018,
			Rating:      8.5,
		},
		{
			Title:       "Jai Bhim",
			Genre:       "Crime, Drama",
			Language:    model.LanguageTamil,
			PosterURL:   "https://images.unsplash.com/photo-1489599063536-f1b3c0fc71a4?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=600",
			Description: "A lawyer fights for justice for a tribal woman whose husband disappears",
			ReleaseYear: 2021,
			Rating:      8.8,
		},

		// Telugu
		{
			Title:       "RRR",
			Genre:       "Action, Drama, Historical",
			Language:    model.LanguageTelugu,
			PosterURL:   "https://images.unsplash.com/photo-1440404653325-ab127d49abc1?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=600",
			Description: "A fictional story about two legendary revolutionaries",
			ReleaseYear: 2022,
			Rating:      8.8,
		},
		{
			Title:       "Pushpa",
			Genre:       "Action, Crime, Drama",
			Language:    model.LanguageTelugu,
			PosterURL:   "https://images.unsplash.com/photo-1574263867128-cc3bae07e41e?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=600",
			Description: "A laborer rises through the ranks of a red sandalwood smuggling syndicate",
			ReleaseYear: 2021,
			Rating:      7.6,
		},
		{
			Title:       "Baahubali",
			Genre:       "Action, Drama, Fantasy",
			Language:    model.LanguageTelugu,
			PosterURL:   "https://images.unsplash.com/photo-1518709268805-4e9042af2176?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=600",
			Description: "A young man learns about his royal heritage and seeks to claim his throne",
			ReleaseYear: 2015,
			Rating:      8.7,
		},
		{
			Title:       "Baahubali 2",
			Genre:       "Action, Drama, Fantasy",
			Language:    model.LanguageTelugu,
			PosterURL:   "https://images.unsplash.com/photo-1518709268805-4e9042af2176?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=600",
			Description: "The conclusion of the epic tale of Baahubali",
			ReleaseYear: 2017,
			Rating:      8.2,
		},
		{
			Title:       "Arjun Reddy",
			Genre:       "Drama, Romance",
			Language:    model.LanguageTelugu,
			PosterURL:   "https://images.unsplash.com/photo-1489599063536-f1b3c0fc71a4?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=600",
			Description: "A short-tempered surgeon falls into a path of self-destruction",
			ReleaseYear: 2017,
			Rating:      8.1,
		},
		{
			Title:       "Eega",
			Genre:       "Action, Comedy, Fantasy",
			Language:    model.LanguageTelugu,
			PosterURL:   "https://images.unsplash.com/photo-1518709268805-4e9042af2176?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=600",
			Description: "A man reincarnated as a fly seeks revenge on his killer",
			ReleaseYear: 2012,
			Rating:      7.7,
		},
		{
			Title:       "Rangasthalam",
			Genre:       "Action, Drama",
			Language:    model.LanguageTelugu,
			PosterURL:   "https://images.unsplash.com/photo-1489599063536-f1b3c0fc71a4?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=600",
			Description: "A hearing-impaired man fights against corruption in his village",
			ReleaseYear: 2018,
			Rating:      8.2,
		},
		{
			Title:       "Jersey",
			Genre:       "Drama, Sport",
			Language:    model.LanguageTelugu,
			PosterURL:   "https://images.unsplash.com/photo-1544551763-46a013bb70d5?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=600",
			Description: "A failed cricketer makes a comeback to fulfill his son's dream",
			ReleaseYear: 2019,
			Rating:      8.6,
		},

		// English
		{
			Title:       "Queen",
			Genre:       "Comedy, Drama",
			Language:    model.LanguageEnglish,
			PosterURL:   "https://images.unsplash.com/photo-1506905925346-21bda4d32df4?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=600",
			Description: "A young woman goes on her honeymoon alone after her wedding is called off",
			ReleaseYear: 2013,
			Rating:      8.2,
		},
		{
			Title:       "English Vinglish",
			Genre:       "Comedy, Drama, Family",
			Language:    model.LanguageEnglish,
			PosterURL:   "https://images.unsplash.com/photo-1506905925346-21bda4d32df4?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=600",
			Description: "A housewife enrolls in an English course to gain confidence",
			ReleaseYear: 2012,
			Rating:      7.8,
		},
		{
			Title:       "The Lunchbox",
			Genre:       "Drama, Romance",
			Language:    model.LanguageEnglish,
			PosterURL:   "https://images.unsplash.com/photo-1506905925346-21bda4d32df4?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=600",
			Description: "A mistaken lunchbox delivery leads to an unlikely friendship",
			ReleaseYear: 2013,
			Rating:      7.8,
		},
		{
			Title:       "Pink",
			Genre:       "Crime, Drama, Thriller",
			Language:    model.LanguageEnglish,
			PosterURL:   "https://images.unsplash.com/photo-1506905925346-21bda4d32df4?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=600",
			Description: "A lawyer defends three young women in a molestation case",
			ReleaseYear: 2016,
			Rating:      8.1,
		},
		{
			Title:       "Tumhari Sulu",
			Genre:       "Comedy, Drama",
			Language:    model.LanguageEnglish,
			PosterURL:   "https://images.unsplash.com/photo-1506905925346-21bda4d32df4?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=600",
			Description: "A housewife becomes a radio jockey and finds her voice",
			ReleaseYear: 2017,
			Rating:      7.1,
		},
		{
			Title:       "Shakuntala Devi",
			Genre:       "Biography, Drama",
			Language:    model.LanguageEnglish,
			PosterURL:   "https://images.unsplash.com/photo-1506905925346-21bda4d32df4?ixlib=rb-4.0.3&auto=format&fit=crop&w=400&h=600",
			Description: "The story of the human computer Shakuntala Devi",
			ReleaseYear: 2020,
			Rating:      6.6,
		},
	}
}

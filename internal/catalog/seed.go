package catalog

import "context"

// Seed loads the launch catalog: the featured-artist program's seven artists
// and their tote designs. Ids are fixed so re-seeding a database is a no-op.
func Seed(ctx context.Context, s Store) error {
	artists := []Artist{
		{
			ID:       "artist-amy-ma",
			Name:     "Amy Ma",
			Bio:      "Amy Ma is a rising junior exploring themes of nature, climate change, immigration, and technology while blending digital and traditional arts. Her art is mostly driven by storytelling and the foreshadowing of our unpredictable future.",
			Location: "Lexington, MA",
			Style:    "Digital & Traditional Arts, Environmental Storytelling",
			Website:  "https://instagram.com/amy.art617",
			Featured: true, FeaturedWeek: 52,
			Image: "/api/images/amy-ma.jpg",
		},
		{
			ID:       "artist-emma-xu",
			Name:     "Emma Xu",
			Bio:      "Emma Xu has been making art since she was five. Through her art she highlights the intricacies of nature, putting emphasis on color and value in her work.",
			Location: "Lexington, MA",
			Style:    "Nature Art, Color & Value Focus",
			Website:  "https://instagram.com/lentil.beans.art",
			Image:    "/api/images/emma-xu.jpg",
		},
		{
			ID:       "artist-alexis-zhang",
			Name:     "Alexis Zhang",
			Bio:      "Alexis Zhang is a multidisciplinary artist whose work focuses on the complexity of human nature, exploring novel ways to unravel and express the world through her creative lens.",
			Location: "Belmont, MA",
			Style:    "Multidisciplinary Art, Human Nature Studies",
			Website:  "https://instagram.com/azhang.artt",
			Image:    "/api/images/alexis-zhang.jpg",
		},
		{
			ID:       "artist-kimly-nguyen",
			Name:     "Kimly Nguyen",
			Bio:      "Kimly Nguyen is a self-taught digital artist. She resonated with digital art because it was precise, eclectic, and allowed her to capture stories and people in her style.",
			Location: "Massachusetts",
			Style:    "Digital Art, Traditional Media, Storytelling",
			Website:  "https://instagram.com/kibblessssssss",
			Image:    "/api/images/kimly-nguyen.jpg",
		},
		{
			ID:       "artist-angela-wang",
			Name:     "Angela Wang",
			Bio:      "Art has become an outlet for Angela to explore the world and express her culture and identity. She is especially into drawing architecture, objects, and scenery.",
			Location: "Needham, MA",
			Style:    "Architecture, Objects & Scenery, Cultural Expression",
			Website:  "https://instagram.com/alegnaaa.art",
			Image:    "/api/images/angela-wang.png",
		},
		{
			ID:       "artist-lucas-dai",
			Name:     "Lucas Dai",
			Bio:      "Lucas has long worked with colored pencil and graphite but has recently begun experimenting with oil paint and watercolor. Through his art he explores questions about humanity and its relationship with the natural world.",
			Location: "Lexington, MA",
			Style:    "Colored Pencil, Graphite, Oil Paint, Watercolor",
			Website:  "https://instagram.com/lucassdai",
			Image:    "/api/images/lucas-dai.jpg",
		},
		{
			ID:       "artist-jeffrey-liu",
			Name:     "Jeffrey Liu",
			Bio:      "Jeffrey Liu is an emerging artist exploring themes of nature and tranquility through traditional landscape painting techniques.",
			Location: "Massachusetts",
			Style:    "Traditional Landscape, Chinese Art, Nature Scenes",
			Image:    "/api/images/jeffrey-liu.jpg",
		},
	}

	products := []Product{
		{
			ID:          "tote-carbon-memory",
			Name:        "Carbon Memory Tote",
			Description: "Amy Ma's 'Carbon Memory' - a powerful environmental piece exploring climate change through digital art featuring futuristic characters and swirling energy.",
			Price:       "14.99",
			Image:       "/api/images/carbon-memory-real.png",
			ArtistID:    "artist-amy-ma",
			InStock:     true, Featured: true,
		},
		{
			ID:          "tote-garden-party",
			Name:        "Garden Party Tote",
			Description: "Emma Xu's 'Garden Party' - a whimsical celebration of nature featuring adorable woodland creatures, flowers, and natural elements in vibrant colors.",
			Price:       "14.99",
			Image:       "/api/images/garden-party.png",
			ArtistID:    "artist-emma-xu",
			InStock:     true, Featured: true,
		},
		{
			ID:          "tote-daydream",
			Name:        "Daydream Tote",
			Description: "Alexis Zhang's 'Daydream' - an introspective piece exploring human consciousness with swirling blues and a contemplative figure surrounded by dreamlike elements.",
			Price:       "14.99",
			Image:       "/api/images/daydream.png",
			ArtistID:    "artist-alexis-zhang",
			InStock:     true,
		},
		{
			ID:          "tote-happy-soup",
			Name:        "Happy Soup Tote",
			Description: "Kimly Nguyen's 'Happy Soup' - a cheerful digital art piece featuring a delicious ramen bowl with playful orange lettering and cute character details.",
			Price:       "14.99",
			Image:       "/api/images/happy-soup.png",
			ArtistID:    "artist-kimly-nguyen",
			InStock:     true,
		},
		{
			ID:          "tote-cafe-july",
			Name:        "Café July Tote",
			Description: "Angela Wang's 'Café July' - a detailed architectural drawing of a charming café scene with intricate line work showcasing her love for buildings and cultural spaces.",
			Price:       "14.99",
			Image:       "/api/images/cafe-july.png",
			ArtistID:    "artist-angela-wang",
			InStock:     true,
		},
		{
			ID:          "tote-dont-litter",
			Name:        "Don't Litter This Moment Tote",
			Description: "Lucas Dai's 'Don't Litter This Moment' - a serene lake scene painted in his signature watercolor style, promoting nature conservation.",
			Price:       "14.99",
			Image:       "/api/images/dont-litter.png",
			ArtistID:    "artist-lucas-dai",
			InStock:     true,
		},
		{
			ID:          "tote-hanging-mountain",
			Name:        "悬空山桂 (Hanging Mountain Osmanthus) Tote",
			Description: "Jeffrey Liu's traditional Chinese landscape painting featuring misty mountains and natural scenery with Chinese calligraphy.",
			Price:       "14.99",
			Image:       "/api/images/hanging-mountain.png",
			ArtistID:    "artist-jeffrey-liu",
			InStock:     true,
		},
	}

	for i := range artists {
		if err := s.AddArtist(ctx, &artists[i]); err != nil {
			return err
		}
	}
	for i := range products {
		if err := s.AddProduct(ctx, &products[i]); err != nil {
			return err
		}
	}
	return nil
}

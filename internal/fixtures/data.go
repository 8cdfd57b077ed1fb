package fixtures

type articleSeed struct {
	Title   string
	Genre   string
	Content string
}

type categorySeed struct {
	Title       string
	Description string
	Images      []string
	Articles    []articleSeed
}

var categories = []categorySeed{
	{
		Title:       "Littérature Classique",
		Description: "Explorez les chefs-d'œuvre intemporels de la littérature mondiale, des grands romans aux pièces de théâtre emblématiques.",
		Images: []string{
			"https://images.unsplash.com/photo-1532012197267-da84d127e765?w=800&q=80",
			"https://images.unsplash.com/photo-1558901357-ca41e027e43a?w=800&q=80",
			"https://images.unsplash.com/photo-1535905557558-afc4877a26fc?w=800&q=80",
		},
		Articles: []articleSeed{
			{
				Title: "Les Misérables : Chef-d'œuvre intemporel de Victor Hugo",
				Genre: "Roman historique",
				Content: "<p>Dans ce roman monumental, Victor Hugo nous plonge dans le Paris du XIXe siècle à travers l'histoire de Jean Valjean, ancien bagnard en quête de rédemption. " +
					"À travers des personnages inoubliables comme Fantine, Cosette, Marius et l'implacable inspecteur Javert, Hugo dresse un portrait saisissant de la misère sociale et des injustices de son époque.</p>" +
					"<p>Cette œuvre majeure de la littérature française reste d'une actualité troublante par ses réflexions sur la justice, la religion et la politique.</p>",
			},
			{
				Title: "L'Odyssée d'Homère : Le voyage éternel",
				Genre: "Épopée",
				Content: "<p>Composée au VIIIe siècle avant J.-C., l'Odyssée raconte le retour d'Ulysse vers son royaume d'Ithaque après la guerre de Troie. " +
					"Ce périple de dix années, parsemé d'épreuves et de rencontres extraordinaires, constitue l'un des récits fondateurs de la civilisation occidentale.</p>" +
					"<p>L'Odyssée n'a jamais cessé d'inspirer artistes, écrivains et cinéastes, et ses thèmes (l'exil, le retour, la fidélité) résonnent encore profondément en nous aujourd'hui.</p>",
			},
			{
				Title: "Madame Bovary : Le chef-d'œuvre de Flaubert",
				Genre: "Roman réaliste",
				Content: "<p>Publié en 1857, ce roman de Gustave Flaubert dépeint la vie d'Emma Bovary, épouse d'un médecin de campagne, qui cherche à échapper à la médiocrité de son existence à travers des liaisons adultères et des dépenses extravagantes.</p>" +
					"<p>Chef-d'œuvre de réalisme psychologique, ce roman nous fascine encore par la précision de son style et la modernité de son héroïne.</p>",
			},
		},
	},
	{
		Title:       "Science-Fiction et Fantasy",
		Description: "Découvrez des univers imaginaires fascinants, des mondes futuristes aux royaumes magiques.",
		Images: []string{
			"https://images.unsplash.com/photo-1486746290722-483e8f1e44d2?w=800&q=80",
			"https://images.unsplash.com/photo-1518770660439-4636190af475?w=800&q=80",
			"https://images.unsplash.com/photo-1551269901-5c5e14c25df7?w=800&q=80",
		},
		Articles: []articleSeed{
			{
				Title: "Dune de Frank Herbert : L'épopée écologique et politique",
				Genre: "Science-Fiction",
				Content: "<p>Publié en 1965, Dune est considéré comme l'un des plus grands chefs-d'œuvre de la science-fiction. " +
					"Frank Herbert y crée un univers complexe centré sur la planète désertique Arrakis, seule source de l'Épice, substance la plus précieuse de l'univers.</p>" +
					"<p>À travers le destin de Paul Atréides, Herbert tisse une réflexion profonde sur l'écologie, le pouvoir, la religion et le destin de l'humanité.</p>",
			},
			{
				Title: "Le Seigneur des Anneaux : La quête épique de Tolkien",
				Genre: "Fantasy épique",
				Content: "<p>Cette œuvre magistrale de J.R.R. Tolkien, publiée entre 1954 et 1955, a redéfini le genre de la fantasy. " +
					"À travers la quête de Frodo Baggins pour détruire l'Anneau unique, Tolkien a créé un monde d'une richesse incomparable, avec ses langues, ses mythologies et ses civilisations.</p>" +
					"<p>Au-delà de l'aventure, Le Seigneur des Anneaux explore le pouvoir et la corruption, l'amitié et le sacrifice.</p>",
			},
			{
				Title: "Neuromancien : Le roman fondateur du cyberpunk",
				Genre: "Cyberpunk",
				Content: "<p>Publié en 1984, ce roman visionnaire de William Gibson a inventé le terme \"cyberespace\" et posé les fondations du mouvement cyberpunk. " +
					"Dans un futur dominé par les corporations et la technologie, Case, un hacker déchu, se voit offrir une dernière chance de retrouver ses capacités en échange d'une mission périlleuse.</p>" +
					"<p>Neuromancien a influencé la littérature, le cinéma, les jeux vidéo et notre façon même de concevoir l'internet.</p>",
			},
		},
	},
	{
		Title:       "Littérature Contemporaine",
		Description: "Les œuvres marquantes des dernières décennies qui reflètent notre société moderne et ses questionnements.",
		Images: []string{
			"https://images.unsplash.com/photo-1512820790803-83ca734da794?w=800&q=80",
			"https://images.unsplash.com/photo-1476275466078-4007374efbbe?w=800&q=80",
			"https://images.unsplash.com/photo-1495640388908-05fb178b2a2e?w=800&q=80",
		},
		Articles: []articleSeed{
			{
				Title: "La Promesse de l'aube : L'hommage de Romain Gary à sa mère",
				Genre: "Autobiographie",
				Content: "<p>Dans ce récit autobiographique publié en 1960, Romain Gary retrace son enfance en Pologne puis à Nice, sous l'égide d'une mère aimante et exigeante qui place en lui tous ses espoirs.</p>" +
					"<p>Ce livre bouleversant, drôle et poignant, explore avec une sensibilité rare la relation mère-fils et le poids du destin.</p>",
			},
			{
				Title: "L'Élégance du hérisson : Une révélation philosophique",
				Genre: "Roman philosophique",
				Content: "<p>Ce roman de Muriel Barbery, publié en 2006, nous présente Renée, concierge cultivée qui cache sa passion pour la littérature et la philosophie, et Paloma, jeune fille surdouée. " +
					"Leur rencontre avec Kakuro Ozu va bouleverser leurs existences.</p>" +
					"<p>Mêlant humour et profondeur philosophique, ce roman explore les préjugés sociaux et la beauté cachée des choses.</p>",
			},
			{
				Title: "Trois jours et une vie : Le drame psychologique de Pierre Lemaitre",
				Genre: "Roman noir",
				Content: "<p>Dans ce roman publié en 2016, Pierre Lemaitre nous plonge dans la petite ville de Beauval, où Antoine, 12 ans, tue accidentellement un enfant du voisinage. " +
					"Le roman suit les conséquences de cet acte sur trois périodes : décembre 1999, 2011 et 2015.</p>" +
					"<p>Lemaitre explore la culpabilité, le hasard et le destin.</p>",
			},
		},
	},
}

var comments = []string{
	"Cette analyse est particulièrement éclairante sur les aspects sociologiques de l'œuvre. J'apprécie la façon dont vous avez mis en lumière les tensions sous-jacentes.",
	"Une interprétation rafraîchissante qui ouvre de nouvelles perspectives sur un texte que je croyais connaître. Merci pour cette relecture stimulante !",
	"Votre article capture parfaitement l'essence de l'œuvre tout en proposant un angle d'analyse original. J'ai beaucoup appris de votre lecture.",
	"Je suis particulièrement touché par votre analyse du développement des personnages, qui apporte une dimension humaine souvent négligée par la critique.",
	"Un point de vue audacieux qui bouscule les interprétations canoniques ! C'est précisément ce type de lecture dont la littérature a besoin pour rester vivante.",
	"La résonance entre les thèmes abordés par l'auteur et notre société contemporaine est frappante. Certains classiques ne vieillissent décidément pas.",
	"La richesse symbolique de ce texte continue de m'émerveiller à chaque relecture. Votre décryptage des motifs récurrents est particulièrement pertinent.",
	"La dimension prophétique de cette œuvre de science-fiction est troublante. L'auteur avait anticipé des évolutions technologiques et sociales avec une précision remarquable.",
	"La construction d'un monde secondaire aussi cohérent et détaillé est un exploit littéraire en soi. Votre article rend justice à ce travail monumental de l'auteur.",
	"Cette œuvre contemporaine dialogue subtilement avec la tradition littéraire tout en proposant une voix singulière.",
	"Votre lecture intertextuelle ouvre des perspectives fascinantes. Les échos avec d'autres œuvres que vous mentionnez enrichissent considérablement l'interprétation.",
	"Votre analyse de la structure narrative révèle une complexité que je n'avais pas pleinement saisie lors de ma lecture. Je vais revisiter l'œuvre avec ce nouvel éclairage.",
}

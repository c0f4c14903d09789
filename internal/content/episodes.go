package content

import "modern-podcast/internal/models"

var episodes = []models.Episode{
	{
		ID:            1,
		EpisodeNumber: 1,
		Title:         "Welcome to Modern Podcast",
		Description:   "In this inaugural episode, we introduce the podcast and discuss what's to come. We explore our mission, share personal stories about why we started this journey, and set the stage for an exciting series of conversations. From technology to culture, creativity to science, we'll be diving deep into the topics that shape our modern world.",
		PublishDate:   date("2025-01-15"),
		Duration:      "42:30",
		AudioURL:      AudioPath(1),
		CoverArt:      CoverPath(1),
		Season:        season(1),
	},
	{
		ID:            2,
		EpisodeNumber: 2,
		Title:         "The Future of Artificial Intelligence",
		Description:   "We dive into the rapidly evolving world of AI, discussing recent breakthroughs in machine learning, the ethical implications of autonomous systems, and what the future might hold. Our conversation explores both the exciting possibilities and important challenges that come with advancing AI technology, from creative applications to societal impact.",
		PublishDate:   date("2025-01-22"),
		Duration:      "38:15",
		AudioURL:      AudioPath(2),
		CoverArt:      CoverPath(2),
		Season:        season(1),
	},
	{
		ID:            3,
		EpisodeNumber: 3,
		Title:         "Creativity in the Digital Age",
		Description:   "How has technology transformed the creative process? We explore the intersection of art and technology, featuring insights from digital artists, musicians, and writers who are pushing boundaries. From AI-generated art to virtual reality experiences, discover how creators are leveraging new tools while maintaining their authentic voice and vision.",
		PublishDate:   date("2025-01-29"),
		Duration:      "45:20",
		AudioURL:      AudioPath(3),
		CoverArt:      CoverPath(3),
		Season:        season(1),
	},
	{
		ID:            4,
		EpisodeNumber: 4,
		Title:         "Sustainable Living: Small Changes, Big Impact",
		Description:   "Environmental sustainability doesn't have to be overwhelming. We discuss practical, actionable steps that anyone can take to reduce their environmental footprint. From zero-waste living to renewable energy options, learn how small daily choices can create meaningful change and inspire others to join the movement toward a more sustainable future.",
		PublishDate:   date("2025-02-05"),
		Duration:      "40:45",
		AudioURL:      AudioPath(4),
		CoverArt:      CoverPath(4),
		Season:        season(1),
	},
	{
		ID:            5,
		EpisodeNumber: 5,
		Title:         "The Science of Happiness",
		Description:   "What does science tell us about happiness and well-being? We explore the latest research in positive psychology, discussing evidence-based practices that can improve mental health and life satisfaction. From gratitude exercises to the power of social connections, discover scientifically-backed strategies for cultivating joy and resilience in everyday life.",
		PublishDate:   date("2025-02-12"),
		Duration:      "36:50",
		AudioURL:      AudioPath(5),
		CoverArt:      CoverPath(5),
		Season:        season(1),
	},
	{
		ID:            6,
		EpisodeNumber: 6,
		Title:         "Building Better Communities Online",
		Description:   "The internet has transformed how we connect, but not all online communities are created equal. We discuss what makes digital communities thrive, exploring successful examples and common pitfalls. Learn about moderation strategies, fostering inclusive spaces, and creating meaningful connections in an increasingly virtual world.",
		PublishDate:   date("2025-02-19"),
		Duration:      "43:15",
		AudioURL:      AudioPath(6),
		CoverArt:      CoverPath(6),
		Season:        season(1),
	},
	{
		ID:            7,
		EpisodeNumber: 7,
		Title:         "The Evolution of Work",
		Description:   "Remote work, gig economy, automation—the nature of work is changing rapidly. We examine these shifts and their implications for workers, employers, and society. From work-life balance to skill development, understand the trends shaping the future of employment and how to navigate this evolving landscape successfully.",
		PublishDate:   date("2025-02-26"),
		Duration:      "41:30",
		AudioURL:      AudioPath(7),
		CoverArt:      CoverPath(7),
		Season:        season(1),
	},
	{
		ID:            8,
		EpisodeNumber: 8,
		Title:         "Music and the Mind",
		Description:   "Music's impact on our brains is profound and fascinating. We explore the neuroscience of music, discussing how melodies affect our emotions, memory, and even physical health. From music therapy to the universal language of rhythm, discover why humans are so deeply connected to sound and what it reveals about consciousness itself.",
		PublishDate:   date("2025-03-05"),
		Duration:      "39:25",
		AudioURL:      AudioPath(8),
		CoverArt:      CoverPath(8),
		Season:        season(1),
	},
	{
		ID:            9,
		EpisodeNumber: 9,
		Title:         "Food Culture and Identity",
		Description:   "Food is more than sustenance—it's culture, memory, and identity. We explore how culinary traditions shape communities and connect us to our heritage. From fusion cuisine to preserving traditional recipes, hear stories about how food tells the story of who we are and where we come from, bridging generations and cultures.",
		PublishDate:   date("2025-03-12"),
		Duration:      "44:10",
		AudioURL:      AudioPath(9),
		CoverArt:      CoverPath(9),
		Season:        season(1),
	},
	{
		ID:            10,
		EpisodeNumber: 10,
		Title:         "Space Exploration: The Next Frontier",
		Description:   "Humanity's relationship with space is entering a new era. We discuss recent missions to Mars, the commercialization of space travel, and what lies ahead for space exploration. From satellite technology to potential colonization, explore how our ventures beyond Earth are advancing science and inspiring future generations.",
		PublishDate:   date("2025-03-19"),
		Duration:      "47:05",
		AudioURL:      AudioPath(10),
		CoverArt:      CoverPath(10),
		Season:        season(1),
	},
	{
		ID:            11,
		EpisodeNumber: 11,
		Title:         "Digital Privacy in 2025",
		Description:   "As our lives become increasingly digital, privacy concerns grow more complex. We examine the current state of digital privacy, data protection laws, and practical steps individuals can take to protect their personal information. Learn about encryption, secure browsing, and navigating the balance between convenience and privacy.",
		PublishDate:   date("2025-03-26"),
		Duration:      "42:55",
		AudioURL:      AudioPath(11),
		CoverArt:      CoverPath(11),
		Season:        season(1),
	},
	{
		ID:            12,
		EpisodeNumber: 12,
		Title:         "The Power of Storytelling",
		Description:   "Stories have shaped human culture since the beginning of time. We explore why narratives are so powerful, how they influence our understanding of the world, and the craft of effective storytelling across different mediums. From oral traditions to digital narratives, discover what makes a story resonate and endure.",
		PublishDate:   date("2025-04-02"),
		Duration:      "40:20",
		AudioURL:      AudioPath(12),
		CoverArt:      CoverPath(12),
		Season:        season(1),
	},
	{
		ID:            13,
		EpisodeNumber: 13,
		Title:         "Mental Health and Technology",
		Description:   "Technology's impact on mental health is complex and multifaceted. We discuss both the benefits and challenges, from mental health apps and teletherapy to social media's effects on well-being. Explore evidence-based approaches to using technology mindfully and the role digital tools can play in supporting mental health.",
		PublishDate:   date("2025-04-09"),
		Duration:      "38:45",
		AudioURL:      AudioPath(13),
		CoverArt:      CoverPath(13),
		Season:        season(1),
	},
	{
		ID:            14,
		EpisodeNumber: 14,
		Title:         "The Renaissance of Board Games",
		Description:   "Board games are experiencing a modern renaissance. We explore this thriving culture, from indie designers to complex strategy games that rival video games in depth. Discover what makes tabletop gaming so appealing in our digital age and how it fosters face-to-face social connection and creative thinking.",
		PublishDate:   date("2025-04-16"),
		Duration:      "35:30",
		AudioURL:      AudioPath(14),
		CoverArt:      CoverPath(14),
		Season:        season(1),
	},
	{
		ID:            15,
		EpisodeNumber: 15,
		Title:         "Urban Planning for the Future",
		Description:   "Cities are evolving to meet new challenges and opportunities. We discuss innovative urban planning approaches, from walkable neighborhoods to smart city technology. Explore how thoughtful design can create more livable, sustainable, and equitable urban spaces that serve all residents while preparing for future growth.",
		PublishDate:   date("2025-04-23"),
		Duration:      "46:15",
		AudioURL:      AudioPath(15),
		CoverArt:      CoverPath(15),
		Season:        season(1),
	},
	{
		ID:            16,
		EpisodeNumber: 16,
		Title:         "The Philosophy of Time",
		Description:   "Time is one of the most fundamental yet mysterious aspects of existence. We delve into philosophical and scientific perspectives on time, from ancient philosophy to modern physics. Discuss time perception, the nature of past and future, and how different cultures conceptualize this dimension that shapes our entire experience.",
		PublishDate:   date("2025-04-30"),
		Duration:      "41:40",
		AudioURL:      AudioPath(16),
		CoverArt:      CoverPath(16),
		Season:        season(1),
	},
	{
		ID:            17,
		EpisodeNumber: 17,
		Title:         "Language Learning and the Brain",
		Description:   "How do we acquire language, and can adults really learn new languages effectively? We explore the cognitive science of language learning, discussing methods that work, debunking myths, and understanding how multilingualism shapes the brain. Discover strategies for language acquisition at any age and the cognitive benefits of speaking multiple languages.",
		PublishDate:   date("2025-05-07"),
		Duration:      "37:55",
		AudioURL:      AudioPath(17),
		CoverArt:      CoverPath(17),
		Season:        season(1),
	},
	{
		ID:            18,
		EpisodeNumber: 18,
		Title:         "Ethical Fashion and Conscious Consumerism",
		Description:   "The fashion industry is transforming as consumers demand more ethical and sustainable practices. We explore slow fashion, transparent supply chains, and the true cost of fast fashion. Learn how conscious consumer choices can drive change in one of the world's most impactful industries and discover brands leading the way in ethical production.",
		PublishDate:   date("2025-05-14"),
		Duration:      "43:25",
		AudioURL:      AudioPath(18),
		CoverArt:      CoverPath(18),
		Season:        season(1),
	},
	{
		ID:            19,
		EpisodeNumber: 19,
		Title:         "The Art of Conversation",
		Description:   "In an age of quick texts and social media comments, the art of meaningful conversation is more important than ever. We discuss what makes conversations engaging, how to be a better listener, and the social skills that help build deeper connections. Explore techniques for navigating difficult discussions and creating spaces for authentic dialogue.",
		PublishDate:   date("2025-05-21"),
		Duration:      "39:10",
		AudioURL:      AudioPath(19),
		CoverArt:      CoverPath(19),
		Season:        season(1),
	},
	{
		ID:            20,
		EpisodeNumber: 20,
		Title:         "Season Finale: Looking Forward",
		Description:   "As we wrap up our first season, we reflect on the conversations we've had and look ahead to what's next. We share listener feedback, discuss themes that emerged throughout the season, and preview exciting topics coming in season two. Thank you for joining us on this journey of exploration and discovery through the modern world.",
		PublishDate:   date("2025-05-28"),
		Duration:      "50:15",
		AudioURL:      AudioPath(20),
		CoverArt:      CoverPath(20),
		Season:        season(1),
	},
}

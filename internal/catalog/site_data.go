package catalog

var processSteps = []ProcessStep{
	{
		ID:      "gesprek",
		Number:  "01",
		Title:   "Gesprek",
		Content: "U vertelt over uw bedrijf, uw processen en wat de meeste tijd kost. Geen voorbereiding, geen technische kennis nodig: gewoon een eerlijk gesprek.",
	},
	{
		ID:      "analyse",
		Number:  "02",
		Title:   "Analyse",
		Content: "Wij brengen in kaart waar AI het meeste impact heeft in uw specifieke situatie. U ontvangt een helder voorstel op maat, geen standaardpakket.",
	},
	{
		ID:      "bouwen",
		Number:  "03",
		Title:   "Bouwen",
		Content: "Na uw akkoord bouwen en lanceren wij de automatisering volledig op maat. Wij implementeren alles in uw bedrijf en u krijgt duidelijke documentatie, nooit ingewikkeld.",
	},
	{
		ID:      "onderhouden",
		Number:  "04",
		Title:   "Onderhouden",
		Content: "Indien gewenst beheren wij alles doorlopend. Gaat er iets mis? Wij nemen proactief contact op. De AI leert mee via machine learning, zodat uw automatisering elke dag beter wordt.",
	},
}

var faqItems = []FaqItem{
	{
		Question: "Wat kost een AI-automatisering?",
		Answer:   "Dat hangt af van de complexiteit en de scope van het project. Na een gratis intakegesprek ontvangt u een concreet voorstel op maat: transparant, zonder verborgen kosten. Er is geen vaste abonnementsformule: u betaalt voor wat u nodig heeft.",
	},
	{
		Question: "Hoe lang duurt het voordat alles werkt?",
		Answer:   "Eenvoudige automatiseringen zijn operationeel binnen één tot twee weken. Complexere projecten met meerdere integraties kunnen vier tot zes weken in beslag nemen. We werken altijd met een duidelijke planning die we vooraf afspreken.",
	},
	{
		Question: "Heb ik technische kennis nodig?",
		Answer:   "Nee, helemaal niet. U hoeft enkel te weten hoe uw bedrijf werkt; de technische kant is volledig onze verantwoordelijkheid. We leveren ook duidelijke documentatie en een korte uitleg, zodat u altijd begrijpt wat er automatisch verloopt.",
	},
	{
		Question: "Wat als er iets misgaat na de lancering?",
		Answer:   "We bieden doorlopend onderhoud aan voor wie dat wenst. Gaat er iets mis? We nemen proactief contact op en lossen het op. U bent nooit aan uw lot overgelaten na de oplevering.",
	},
	{
		Question: "Moet ik bestaande tools vervangen?",
		Answer:   "Nee. Aivanta werkt met de tools die u al gebruikt, van Gmail tot Shopify en van Notion tot uw boekhoudprogramma. We koppelen alles aan elkaar, u hoeft niets te vervangen.",
	},
	{
		Question: "Is AI niet enkel iets voor grote bedrijven?",
		Answer:   "Integendeel. KMO's en zelfstandigen hebben vaak het meeste baat bij AI-automatisering, omdat ze minder personeel hebben om routinetaken op te vangen. Aivanta richt zich specifiek op de gewone ondernemer, niet op grote corporates.",
	},
}

var tools = []Tool{
	{Slug: "gmail", Name: "Gmail"},
	{Slug: "googlesheets", Name: "Google Sheets"},
	{Slug: "googledrive", Name: "Google Drive"},
	{Slug: "googlecalendar", Name: "Google Calendar"},
	{Slug: "linkedin", Name: "LinkedIn"},
	{Slug: "openai", Name: "OpenAI"},
	{Slug: "slack", Name: "Slack"},
	{Slug: "whatsapp", Name: "WhatsApp"},
	{Slug: "notion", Name: "Notion"},
	{Slug: "zapier", Name: "Zapier"},
	{Slug: "hubspot", Name: "HubSpot"},
	{Slug: "mailchimp", Name: "Mailchimp"},
	{Slug: "shopify", Name: "Shopify"},
	{Slug: "wordpress", Name: "WordPress"},
	{Slug: "facebook", Name: "Facebook"},
	{Slug: "instagram", Name: "Instagram"},
	{Slug: "x", Name: "X"},
	{Slug: "youtube", Name: "YouTube"},
	{Slug: "stripe", Name: "Stripe"},
	{Slug: "zoom", Name: "Zoom"},
	{Slug: "dropbox", Name: "Dropbox"},
	{Slug: "microsoftexcel", Name: "Microsoft Excel"},
	{Slug: "microsoftoutlook", Name: "Microsoft Outlook"},
	{Slug: "trello", Name: "Trello"},
	{Slug: "airtable", Name: "Airtable"},
	{Slug: "canva", Name: "Canva"},
	{Slug: "telegram", Name: "Telegram"},
	{Slug: "microsoftteams", Name: "Microsoft Teams"},
	{Slug: "woocommerce", Name: "WooCommerce"},
	{Slug: "squarespace", Name: "Squarespace"},
}

var useCases = []UseCase{
	{
		ID:       "offerteaanvragen-opvolgen",
		Category: "leadgeneratie",
		Title:    "Offerteaanvragen binnen vijf minuten beantwoord",
		Summary:  "Elke aanvraag via de website krijgt meteen een persoonlijk antwoord en een voorstel voor een afspraak.",
		Problem:  "Aanvragen bleven soms dagen liggen in de mailbox. Tegen de tijd dat er werd geantwoord, had de klant al elders getekend.",
		How:      "Het formulier voedt een AI-flow die de aanvraag leest, de vraag samenvat en een antwoord op maat opstelt met een link naar de agenda.",
		Value:    "Geen enkele lead valt nog tussen de mazen. De ondernemer ziet elke ochtend een overzicht met wie wat vroeg.",
		Impact:   "Reactietijd van gemiddeld 2 dagen naar minder dan 5 minuten.",
		ImageURL: "https://images.unsplash.com/photo-1556761175-b413da4baf72?auto=format&fit=crop&w=900&q=70",
		Icon:     IconUserPlus,
	},
	{
		ID:       "linkedin-posts-uit-notities",
		Category: "marketing-content",
		Title:    "Een maand LinkedIn-posts uit één gesprek",
		Summary:  "Eén opgenomen gesprek per maand wordt omgezet in een volledige contentkalender in de eigen tone of voice.",
		Problem:  "Er was nooit tijd om consequent te posten, terwijl de zaakvoerder genoeg te vertellen had.",
		How:      "De opname wordt uitgeschreven, de AI haalt de sterkste ideeën eruit en schrijft conceptposts die in Notion klaarstaan voor goedkeuring.",
		Value:    "Zichtbaarheid zonder extra werk: enkel nalezen en publiceren.",
		Impact:   "Van 2 naar 12 posts per maand, met een verdubbeling van het aantal profielbezoeken.",
		ImageURL: "https://images.unsplash.com/photo-1611944212129-29977ae1398c?auto=format&fit=crop&w=900&q=70",
		Icon:     IconSparkles,
	},
	{
		ID:       "whatsapp-klantenservice",
		Category: "chatbots-klantcontact",
		Title:    "Klantvragen via WhatsApp, ook 's avonds",
		Summary:  "Een assistent beantwoordt de meest gestelde vragen en geeft complexe vragen door met een samenvatting.",
		Problem:  "Dezelfde vragen over levertijden en openingsuren kwamen tientallen keren per week binnen, vaak buiten de kantooruren.",
		How:      "Een chatbot getraind op de eigen FAQ en productinformatie antwoordt direct en maakt bij twijfel een ticket aan voor het team.",
		Value:    "Klanten krijgen meteen antwoord, het team focust op de vragen die echt aandacht vragen.",
		Impact:   "Ruim 60% van de vragen volledig automatisch afgehandeld.",
		ImageURL: "https://images.unsplash.com/photo-1577563908411-5077b6dc7624?auto=format&fit=crop&w=900&q=70",
		Icon:     IconMessageSquare,
	},
	{
		ID:       "verkoopgesprek-samenvatting",
		Category: "salesopvolging",
		Title:    "Verkoopgesprekken die zichzelf opvolgen",
		Summary:  "Na elk gesprek staan de samenvatting, de afspraken en een opvolgmail klaar in het CRM.",
		Problem:  "Notities werden laat of niet ingevuld en opvolgmails vertrokken pas dagen na het gesprek.",
		How:      "De opname van het gesprek wordt samengevat, actiepunten worden als taken in het CRM gezet en een conceptmail wordt voorbereid.",
		Value:    "Elke klant krijgt dezelfde dag een professionele opvolging, zonder dat iemand iets hoeft uit te typen.",
		Impact:   "Gemiddeld 4 uur per verkoper per week terugwonnen.",
		ImageURL: "https://images.unsplash.com/photo-1552581234-26160f608093?auto=format&fit=crop&w=900&q=70",
		Icon:     IconFileText,
	},
	{
		ID:       "nieuwe-klant-onboarding",
		Category: "onboarding-backoffice",
		Title:    "Nieuwe klanten onboarden zonder papierwerk",
		Summary:  "Contract, intakeformulier, map in Drive en welkomstmail vertrekken automatisch zodra een klant tekent.",
		Problem:  "Elke nieuwe klant betekende een uur knip- en plakwerk tussen mail, Drive en de boekhouding.",
		How:      "Een getekende offerte start een flow die de klantgegevens verzamelt, documenten aanmaakt en het team de juiste taken toewijst.",
		Value:    "Een vlotte, professionele start voor elke klant en geen vergeten stappen meer.",
		Impact:   "Onboarding van 60 naar 5 minuten manueel werk.",
		ImageURL: "https://images.unsplash.com/photo-1454165804606-c3d57bc86b40?auto=format&fit=crop&w=900&q=70",
		Icon:     IconWorkflow,
	},
	{
		ID:       "facturen-verwerken",
		Category: "onboarding-backoffice",
		Title:    "Inkomende facturen automatisch verwerkt",
		Summary:  "Facturen uit de mailbox worden uitgelezen, gecontroleerd en klaargezet voor de boekhouder.",
		Problem:  "Facturen kwamen binnen via verschillende mailadressen en moesten manueel worden doorgestuurd en ingegeven.",
		How:      "De AI herkent facturen in de mailbox, leest bedrag, leverancier en vervaldatum uit en zet ze in de juiste map en spreadsheet.",
		Value:    "Een volledig en correct overzicht op elk moment, zonder zoekwerk aan het einde van het kwartaal.",
		Impact:   "Circa 3 uur administratie per week minder.",
		ImageURL: "https://images.unsplash.com/photo-1554224155-6726b3ff858f?auto=format&fit=crop&w=900&q=70",
		Icon:     IconClipboard,
	},
	{
		ID:       "afspraken-inplannen",
		Category: "chatbots-klantcontact",
		Title:    "Afspraken inplannen zonder heen-en-weer mailen",
		Summary:  "Klanten kiezen zelf een moment; bevestiging en herinnering volgen automatisch.",
		Problem:  "Een afspraak vastleggen kostte gemiddeld vier mails en regelmatig kwamen klanten niet opdagen.",
		How:      "De assistent stelt beschikbare momenten voor uit de agenda, boekt de afspraak en stuurt de dag voordien een herinnering via mail of sms.",
		Value:    "Minder administratie en een agenda die zich vanzelf vult.",
		Impact:   "No-shows met de helft gedaald.",
		ImageURL: "https://images.unsplash.com/photo-1506784983877-45594efa4cbe?auto=format&fit=crop&w=900&q=70",
		Icon:     IconCalendar,
	},
}

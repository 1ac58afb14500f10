package catalog

var serviceCategories = []ServiceCategory{
	{
		Slug:        "leadgeneratie",
		Icon:        IconUserPlus,
		Title:       "Leadgeneratie & Outreach",
		Tagline:     "Meer kwalitatieve leads, minder handmatig werk",
		Description: "Automatiseer hoe u nieuwe klanten vindt, kwalificeert en aanspreekt — zodat uw team focust op gesprekken die er écht toe doen.",
		HeroProblem: "Veel KMO's en zelfstandigen verliezen dagelijks potentiële klanten doordat leads niet tijdig worden opgevolgd, kwalificatie handmatig verloopt en outreach te generiek is. AI maakt gerichte, schaalbare leadgeneratie ook voor kleine teams mogelijk — zonder extra personeel.",
		HeroResults: []string{
			"Leads automatisch kwalificeren op basis van gedrag en profielcriteria",
			"Gepersonaliseerde outreach zonder elk bericht handmatig te schrijven",
			"Consistente opvolging, ook buiten kantooruren",
			"Minder tijdverlies op koude of ongekwalificeerde contacten",
			"Beter zicht op welke kanalen en boodschappen het beste werken",
		},
		ApproachSteps: []ApproachStep{
			{Step: "Analyse", Description: "We brengen uw huidige leadproces in kaart: bronnen, kwalificatiecriteria en knelpunten."},
			{Step: "Ontwerp", Description: "We ontwerpen de flows, triggers en contentstrategie op maat van uw doelgroep."},
			{Step: "Bouw", Description: "We bouwen de automatisering en koppelen ze aan uw bestaande tools."},
			{Step: "Test", Description: "We testen met echte leads en stellen bij op basis van eerste resultaten."},
			{Step: "Optimalisatie", Description: "Doorlopende analyse en verfijning van de flows op basis van data."},
		},
		Scope: Scope{
			Included: []string{
				"Automatisering van bestaande leadflows",
				"Integratie met uw CRM of e-mailtool",
				"Gepersonaliseerde follow-up berichten",
				"Kwalificatie- en scoringlogica op maat",
				"Rapportage van resultaten",
			},
			Excluded: []string{
				"Aankoop of aanmaak van leadlijsten of databases",
				"Garantie op specifieke conversiecijfers",
				"Volledige contentstrategie of copywriting",
				"Advertentiebeheer (Google/Meta Ads)",
				"Juridisch advies over GDPR-compliance",
			},
		},
		SubServices: []SubService{
			{
				ID:             "website-chatbot-leadcapture",
				Title:          "Website chatbot voor lead capture",
				Summary:        "Een AI-chatbot op uw website die bezoekers proactief aanspreekt, basisinformatie verzamelt en leads automatisch doorstuurt naar uw CRM of inbox.",
				TargetAudience: "Bedrijven met een informatieve website die relatief veel bezoekers trekken maar weinig contactformulieren of aanvragen ontvangen.",
				WhenToUse:      "Wanneer bezoekers vertrekken zonder contact op te nemen, of wanneer uw team te weinig capaciteit heeft om elke bezoeker handmatig te begeleiden.",
				Benefits: []string{
					"Meer leads uit bestaand websiteverkeer, zonder extra advertentiebudget",
					"24/7 beschikbaar voor een eerste contact of kwalificatiegesprek",
					"Automatische kwalificatie vóór uw team ermee aan de slag gaat",
				},
				HowAIWorks: "De chatbot herkent de intentie van de bezoeker op basis van de bezochte pagina en gestelde vragen, past zijn toon aan op de context en stelt gerichte kwalificatievragen. Enkel relevante leads worden doorgestuurd — met een samenvatting van het gesprek erbij.",
				Included: []string{
					"Opzet en configuratie van de chatbot",
					"Koppeling met uw CRM of e-mailtool",
					"Aanpassing aan uw merk, toon en diensten",
					"Basisdocumentatie voor intern gebruik",
				},
				Excluded: []string{
					"Volledige heropbouw of redesign van uw website",
					"Meertalige configuratie (beschikbaar als meerwerk)",
					"Integratie met systemen zonder openbare API",
				},
				Integrations: []string{"HubSpot", "Pipedrive", "Mailchimp", "Gmail", "Notion", "Slack"},
			},
			{
				ID:             "ai-leadkwalificatie-scoring",
				Title:          "AI leadkwalificatie & scoring",
				Summary:        "Een automatisch systeem dat inkomende leads beoordeelt op basis van criteria die u bepaalt — en prioriteit toekent zodat uw team focust op de sterkste kansen.",
				TargetAudience: "Salesteams en zelfstandigen die regelmatig inbound leads ontvangen en moeite hebben om de beste kansen snel te onderscheiden van zwakkere contacten.",
				WhenToUse:      "Wanneer u tijd verliest aan het opvolgen van contacten die uiteindelijk niet passen, of wanneer waardevolle leads te laat of te generiek worden beantwoord.",
				Benefits: []string{
					"Hogere conversieratio per verkoopgesprek",
					"Minder tijdverlies op ongekwalificeerde contacten",
					"Prioriteitslijst klaar voor uw team elke ochtend",
				},
				HowAIWorks: "AI analyseert elk contact op basis van gedrag (geopende e-mails, bekeken pagina's), profieldata en ingevulde formulieren. Het kent een score toe en past de aanbevolen opvolgstap aan op de situatie.",
				Included: []string{
					"Opzet van scoringmodel op basis van uw criteria",
					"Koppeling met uw CRM",
					"Automatische toewijzing aan salesverantwoordelijke",
					"Wekelijkse rapportage",
				},
				Excluded: []string{
					"Aanleg of aankoop van nieuwe leadbronnen",
					"Volledige CRM-migratie of -herinrichting",
					"Advertentiebeheer of campagnestrategie",
				},
				Integrations: []string{"HubSpot", "Pipedrive", "Salesforce", "Gmail", "Typeform"},
			},
			{
				ID:             "koude-email-personalisatie",
				Title:          "Koude e-mail personalisatie met AI",
				Summary:        "Gepersonaliseerde koude e-mails op schaal, waarbij AI relevante informatie over de ontvanger verwerkt in elke boodschap — zodat het niet aanvoelt als een massamailing.",
				TargetAudience: "Bedrijven en zelfstandigen die proactief nieuwe klanten benaderen maar niet de tijd hebben om elk bericht handmatig op maat te schrijven.",
				WhenToUse:      "Wanneer generieke koude mails weinig respons opleveren, of wanneer u een grotere lijst prospecten wilt aanschrijven zonder aan relevantie in te boeten.",
				Benefits: []string{
					"Hogere openings- en antwoordratio in vergelijking met generieke mails",
					"Schaalbare outreach zonder extra personeel",
					"Consistente, professionele toon bij elk contact",
				},
				HowAIWorks: "AI verzamelt publiek beschikbare informatie over de ontvanger (sector, rol, recente activiteit op LinkedIn of website) en verwerkt dit in een persoonlijke openingszin en een relevante waardepropositie — automatisch voor elke ontvanger.",
				Included: []string{
					"Opzet van e-mailflow met personalisatielogica",
					"Templates op maat van uw aanbod en doelgroep",
					"Basisopzet voor A/B-testen van onderwerpregels",
					"Koppeling met uw e-mailtool",
				},
				Excluded: []string{
					"Aankoop of opbouw van contactenlijsten",
					"Juridisch advies over GDPR (raadpleeg uw adviseur)",
					"Volledig contentplan of outreachstrategie",
				},
				Integrations: []string{"Instantly", "Lemlist", "Apollo", "Gmail", "HubSpot"},
			},
			{
				ID:             "automatische-follow-up-flows",
				Title:          "Automatische follow-up flows",
				Summary:        "Geautomatiseerde opvolgsequenties die getriggerd worden op basis van het gedrag van uw leads — zodat geen enkele kans verloren gaat door een vergeten of te late opvolging.",
				TargetAudience: "Iedereen die leads opvolgt via e-mail of CRM en merkt dat kansen verloren gaan door inconsistente opvolging of te weinig capaciteit.",
				WhenToUse:      "Wanneer leads te lang onbeantwoord blijven, of wanneer uw team niet de capaciteit heeft voor een gestructureerde opvolging in meerdere stappen.",
				Benefits: []string{
					"Consistente opvolging zonder handmatige herinneringen",
					"Juiste boodschap op het juiste moment, afgestemd op gedrag",
					"Meer gesloten deals uit uw bestaande pipeline",
				},
				HowAIWorks: "De flow past zich aan op basis van acties van de lead: heeft hij de mail geopend? Geklikt op een link? Geen reactie gegeven? AI bepaalt de volgende stap en past de boodschap aan op de context van het contact.",
				Included: []string{
					"Opzet van minimaal 3 follow-up stappen",
					"Koppeling met uw CRM en e-mailtool",
					"Triggerlogica op basis van gedrag",
					"Rapportage en optimalisatie na 30 dagen",
				},
				Excluded: []string{
					"Volledige contentstrategie of campagneplanning",
					"Beheer van advertentiebudgetten",
					"Meertalige flows (beschikbaar als meerwerk)",
				},
				Integrations: []string{"HubSpot", "ActiveCampaign", "Mailchimp", "Pipedrive", "Gmail"},
			},
		},
	},
	{
		Slug:        "marketing-content",
		Icon:        IconSparkles,
		Title:       "Marketing & Contentautomatisatie",
		Tagline:     "Consistent aanwezig online, zonder dagelijkse moeite",
		Description: "Genereer, plan en publiceer content in uw eigen stijl — AI doet het zware werk, u behoudt de controle.",
		HeroProblem: "Consistente content produceren kost tijd die de meeste KMO's en zelfstandigen niet hebben. Het gevolg: onregelmatige publicaties, verouderde kanalen en gemiste kansen om zichtbaar te blijven bij potentiële klanten. AI kan helpen om kwalitatieve content sneller te produceren — zonder uw merkidentiteit te verliezen.",
		HeroResults: []string{
			"Regelmatige publicaties zonder dagelijkse tijdsinvestering",
			"Content in uw eigen toon, stijl en merkwaarden",
			"Meer kanalen bedienen met dezelfde tijdsinvestering",
			"Betere consistentie in boodschap en branding",
			"Meer tijd voor strategie in plaats van uitvoering",
		},
		ApproachSteps: []ApproachStep{
			{Step: "Analyse", Description: "We analyseren uw huidige contentoutput, toon en doelgroep."},
			{Step: "Ontwerp", Description: "We stellen een contentstructuur op: welke formats, kanalen en frequentie."},
			{Step: "Bouw", Description: "We configureren de tools en flows voor automatische generatie en planning."},
			{Step: "Test", Description: "We testen met echte content en verfijnen op basis van uw feedback."},
			{Step: "Optimalisatie", Description: "Periodieke review van prestaties en bijsturing van de strategie."},
		},
		Scope: Scope{
			Included: []string{
				"Contentgeneratie op basis van uw merkstijl",
				"Automatische planning en publicatie",
				"Integratie met uw social media en e-mailtools",
				"Templates en formats op maat",
			},
			Excluded: []string{
				"Volledige marketingstrategie of merkpositionering",
				"Betaalde advertentiecampagnes (Google/Meta)",
				"Professionele fotografie of videoproductie",
				"SEO-audit of technische website-optimalisatie",
			},
		},
		SubServices: []SubService{
			{
				ID:             "contentkalender-ideegeneratie",
				Title:          "Contentkalenders & ideegeneratie",
				Summary:        "AI genereert op basis van uw sector, doelgroep en actuele trends een kalender met concrete contentideeën — klaar om goed te keuren en uit te voeren.",
				TargetAudience: "Bedrijven en zelfstandigen die weten dat ze meer content moeten produceren, maar steeds vastlopen op \"Waarover schrijf ik eigenlijk?\"",
				WhenToUse:      "Wanneer contentproductie stagneert door gebrek aan ideeën of structuur, of wanneer u consistenter aanwezig wil zijn op meerdere kanalen.",
				Benefits: []string{
					"Nooit meer een leeg scherm voor een onbepaald publiek",
					"Thematische structuur over weken en maanden heen",
					"Ideeën afgestemd op uw sector en seizoensgebonden momenten",
				},
				HowAIWorks: "AI analyseert trending onderwerpen in uw sector, koppelt ze aan uw aanbod en doelgroep, en genereert concrete voorstellen met titel, format en kanaal. U kiest wat u uitvoert.",
				Included: []string{
					"Maandelijkse contentkalender met 15–20 ideeën",
					"Indeling per kanaal en format",
					"Koppeling met uw plannings- of projecttool",
					"Eerste review en bijsturing na één maand",
				},
				Excluded: []string{
					"Uitvoering en publicatie van de content",
					"Grafisch ontwerp of beeldwerk",
					"SEO-onderzoek of keyword-strategie",
				},
				Integrations: []string{"Notion", "Trello", "Asana", "Google Sheets", "Airtable"},
			},
			{
				ID:             "social-posts-generator",
				Title:          "Social posts generator",
				Summary:        "Automatische generatie van social media posts in uw eigen toon — klaar om goed te keuren en te publiceren, of automatisch ingepland op de beste tijdstippen.",
				TargetAudience: "KMO's en zelfstandigen die weten dat sociale aanwezigheid belangrijk is, maar te weinig tijd hebben om er dagelijks mee bezig te zijn.",
				WhenToUse:      "Wanneer uw sociale kanalen wekenlang stil staan, of wanneer u elke post van nul af aan schrijft en te weinig publiceert.",
				Benefits: []string{
					"Consistente aanwezigheid op sociale media zonder dagelijkse inspanning",
					"Posts in uw eigen stijl en toon, niet generiek",
					"Meer bereik en zichtbaarheid met minder tijdsinvestering",
				},
				HowAIWorks: "AI leert uw schrijfstijl, merkwaarden en doelgroep kennen. Op basis van een onderwerp of aanleiding genereert het kant-en-klare posts voor LinkedIn, Instagram of Facebook — inclusief hashtags en optimale publicatietijden.",
				Included: []string{
					"Configuratie van de generator op uw stijl en tone of voice",
					"Koppeling met uw publicatietool",
					"Automatische inplanning (optioneel)",
					"Review na eerste maand",
				},
				Excluded: []string{
					"Professionele beeldinhold (foto's, video's)",
					"Community management of reactiebeheer",
					"Betaalde advertenties op sociale media",
				},
				Integrations: []string{"Buffer", "Hootsuite", "Later", "LinkedIn", "Instagram", "Facebook"},
			},
			{
				ID:             "email-campagnes-nurture",
				Title:          "E-mailcampagnes & nurture flows",
				Summary:        "Geautomatiseerde e-mailflows die prospects en klanten begeleiden van eerste interesse tot aankoop — met relevante boodschappen op het juiste moment.",
				TargetAudience: "Bedrijven met een e-maillijst die niet of te weinig gebruikt wordt, of die handmatig nieuwsbrieven versturen zonder structurele opvolgingsstrategie.",
				WhenToUse:      "Wanneer contacten na een eerste interactie niet meer gecontacteerd worden, of wanneer uw e-mailcommunicatie niet aansluit bij de fase van de klantrelatie.",
				Benefits: []string{
					"Hogere betrokkenheid bij uw e-maillijst",
					"Meer omzet uit bestaande contacten",
					"Automatische opwarming van koude contacten",
				},
				HowAIWorks: "AI personaliseert e-mails op basis van het gedrag en profiel van de ontvanger: welke pagina's bezocht, welke mails geopend, in welke fase van het aankooptraject. Zo ontvangt iedereen een relevante boodschap.",
				Included: []string{
					"Opzet van minimaal 2 geautomatiseerde flows",
					"Copywriting van de e-mailtemplates",
					"Koppeling met uw e-mailplatform",
					"Resultatenrapportage na 30 dagen",
				},
				Excluded: []string{
					"Volledige rebrand of visueel ontwerp van templates",
					"Beheer van betaalde e-mailcampagnes",
					"Opbouw van e-maillijst of leadgeneratiestrategie",
				},
				Integrations: []string{"Mailchimp", "ActiveCampaign", "Klaviyo", "HubSpot", "Brevo"},
			},
			{
				ID:             "landingpage-copy-varianten",
				Title:          "Landingpage copy varianten",
				Summary:        "AI genereert meerdere varianten van uw landingpage-teksten — afgestemd op verschillende doelgroepen of campagnedoelstellingen — zodat u sneller kunt testen wat het beste converteert.",
				TargetAudience: "Bedrijven die meerdere campagnes of doelgroepen bedienen en steeds nieuwe landingpage-teksten nodig hebben, maar geen full-time copywriter in huis hebben.",
				WhenToUse:      "Bij het lanceren van nieuwe campagnes, bij seizoensgebonden promoties, of wanneer bestaande landingpages onvoldoende converteren.",
				Benefits: []string{
					"Snellere time-to-market voor nieuwe campagnes",
					"Meerdere varianten beschikbaar voor A/B-testen",
					"Consistente toon doorheen al uw campagnes",
				},
				HowAIWorks: "AI analyseert uw bestaande merkbelofte, doelgroep en concurrentie, en genereert op basis hiervan meerdere kopcombinaties — van headline tot CTA. U kiest en past aan.",
				Included: []string{
					"Minimaal 3 copy-varianten per landingpage",
					"Aanpassing aan uw merkstijl en tone of voice",
					"Korte briefing-sessie vooraf",
				},
				Excluded: []string{
					"Technische implementatie op uw website",
					"Grafisch ontwerp of beeldwerk",
					"A/B-testbeheer en -analyse",
				},
				Integrations: []string{"Webflow", "WordPress", "Unbounce", "Google Optimize", "Notion"},
			},
		},
	},
	{
		Slug:        "chatbots-klantcontact",
		Icon:        IconMessageSquare,
		Title:       "AI-chatbots & Klantcontact",
		Tagline:     "Altijd bereikbaar, nooit een vraag onbeantwoord",
		Description: "Behandel klantvragen sneller en consistenter met AI-chatbots die uw tone of voice respecteren en uw team ontlasten.",
		HeroProblem: "Klanten verwachten snelle antwoorden — ook buiten kantooruren. Voor KMO's en zelfstandigen is dat vrijwel onmogelijk zonder extra personeel. AI-chatbots maken schaalbare, kwalitatieve klantenservice mogelijk, 24 uur op 24, zonder dat elk bericht handmatig beantwoord hoeft te worden.",
		HeroResults: []string{
			"Directe antwoorden op veelgestelde vragen, dag en nacht",
			"Consistent merkwaardige communicatie bij elk klantcontact",
			"Minder herhaalde vragen die uw team bereiken",
			"Snellere verwerking van klantvragen en -verzoeken",
			"Schaalbare klantenservice zonder extra aanwervingen",
		},
		ApproachSteps: []ApproachStep{
			{Step: "Analyse", Description: "We inventariseren uw meest voorkomende klantvragen en bestaande antwoorddocumenten."},
			{Step: "Ontwerp", Description: "We ontwerpen de gespreksflows, escalatiepunten en tone of voice."},
			{Step: "Bouw", Description: "We trainen de chatbot op uw content en configureren de integraties."},
			{Step: "Test", Description: "We testen met echte vragen en verfijnen de antwoorden."},
			{Step: "Optimalisatie", Description: "Op basis van gesprekslogs verfijnen we de chatbot doorlopend."},
		},
		Scope: Scope{
			Included: []string{
				"Chatbot getraind op uw eigen content en FAQ",
				"Integratie op uw website of in uw communicatietools",
				"Escalatieflows naar menselijke medewerkers",
				"Maandelijkse review van gesprekskwaliteit",
			},
			Excluded: []string{
				"Volledige klantenservicestrategie of -training",
				"Telefonie of spraakassistenten",
				"Integratie met systemen zonder openbare API",
				"Juridisch bindende communicatie via de chatbot",
			},
		},
		SubServices: []SubService{
			{
				ID:             "website-faq-chatbot",
				Title:          "Website FAQ chatbot",
				Summary:        "Een chatbot die de meest gestelde vragen over uw bedrijf, diensten of producten automatisch en correct beantwoordt — getraind op uw eigen documentatie.",
				TargetAudience: "Bedrijven waarvan het supportteam steeds dezelfde vragen krijgt, of zelfstandigen die na kantooruren niet bereikbaar zijn maar toch vlot willen reageren.",
				WhenToUse:      "Wanneer dezelfde vragen keer op keer terugkomen en uw team daar te veel tijd aan verliest, of wanneer bezoekers uw site verlaten zonder hun vraag beantwoord te krijgen.",
				Benefits: []string{
					"Tot 60–70% van veelgestelde vragen automatisch beantwoord",
					"Minder belasting op uw team voor routinevragen",
					"24/7 bereikbaarheid voor bezoekers en klanten",
				},
				HowAIWorks: "De chatbot wordt getraind op uw FAQ-documenten, websitecontent en interne kennisbank. Hij herkent de intentie achter een vraag — ook als die anders geformuleerd is dan in uw documentatie — en geeft een relevant, begrijpelijk antwoord.",
				Included: []string{
					"Opzet en training op basis van uw bestaande FAQ",
					"Integratie op uw website",
					"Escalatieflow naar e-mail of contactformulier",
					"Eerste review na 30 dagen op basis van gesprekslogs",
				},
				Excluded: []string{
					"Opmaak of redactie van uw FAQ-documenten",
					"Meertalige configuratie (beschikbaar als meerwerk)",
					"Integratie met telefonie of callcentersystemen",
				},
				Integrations: []string{"Intercom", "Crisp", "Tidio", "WordPress", "Webflow", "Notion"},
			},
			{
				ID:             "support-intake-chatbot",
				Title:          "Support intake chatbot",
				Summary:        "Een chatbot die binnenkomende supportverzoeken structureert: hij verzamelt de nodige informatie, categoriseert de vraag en stuurt het ticket door naar de juiste medewerker of flow.",
				TargetAudience: "Bedrijven met een klantenserviceteam dat veel tijd verliest aan het uitvragen van basisinformatie bij elk nieuw verzoek.",
				WhenToUse:      "Wanneer supporttickets onvolledig binnenkomen, wanneer triage handmatig verloopt, of wanneer klanten lang moeten wachten op een eerste reactie.",
				Benefits: []string{
					"Volledigere tickets van bij het begin — minder heen-en-weerverkeer",
					"Snellere eerste responstijd",
					"Automatische prioritering en routering van verzoeken",
				},
				HowAIWorks: "De chatbot stelt gerichte vragen op basis van het type verzoek, herkent urgentie op basis van taalgebruik en context, en stuurt tickets automatisch door met alle nodige informatie — klaar voor uw team om op te handelen.",
				Included: []string{
					"Opzet van intakeflow per type verzoek",
					"Koppeling met uw helpdeskplatform of e-mailtool",
					"Categorisatie- en routeringslogica",
					"Documentatie voor intern gebruik",
				},
				Excluded: []string{
					"Volledige helpdesk-inrichting of SLA-beheer",
					"Integratie met legacy-systemen zonder API",
					"Klantenservicetraining voor uw team",
				},
				Integrations: []string{"Zendesk", "Freshdesk", "Intercom", "Notion", "Slack", "Gmail"},
			},
			{
				ID:             "klantvraag-triage",
				Title:          "Klantvraag triage",
				Summary:        "Een automatisch triagesysteem dat binnenkomende vragen en klachten classificeert op urgentie, type en verantwoordelijke — en ze doorstuurt naar de juiste persoon of flow.",
				TargetAudience: "Teams die dagelijks veel inbound communicatie verwerken (e-mail, chat, formulieren) en te veel tijd kwijt zijn aan het sorteren en doorsturen.",
				WhenToUse:      "Wanneer niet-dringende vragen vertraging oplopen omdat ze in dezelfde wachtrij zitten als urgente verzoeken, of wanneer de verkeerde medewerker te vaak een vraag ontvangt die niet bij hen hoort.",
				Benefits: []string{
					"Snellere afhandeling van urgente vragen",
					"Minder interne doorsturingen en misverstanden",
					"Overzichtelijkere workload voor uw team",
				},
				HowAIWorks: "AI analyseert de inhoud van elk inkomend bericht, bepaalt het type vraag (klacht, informatieverzoek, technisch probleem, ...) en kent een urgentieniveau toe op basis van taalpatronen en context. Vervolgens stuurt het door naar de juiste persoon.",
				Included: []string{
					"Opzet van classificatielogica op maat",
					"Koppeling met uw e-mail of communicatietool",
					"Doorstuurregels per categorie",
					"Rapportage van volumes en types",
				},
				Excluded: []string{
					"Volledig ticketingsysteem of helpdesk-inrichting",
					"Klantenserviceprocessen buiten digitale communicatie",
					"Integratie met telefonieplatformen",
				},
				Integrations: []string{"Gmail", "Outlook", "Zendesk", "Freshdesk", "Slack", "HubSpot"},
			},
			{
				ID:             "kennisbank-faq-assistent",
				Title:          "Kennisbank / FAQ assistent",
				Summary:        "Een interne AI-assistent die getraind is op uw documentatie, procedures en productinfo — zodat medewerkers snel het juiste antwoord vinden zonder intern te hoeven zoeken.",
				TargetAudience: "Bedrijven met een groeiend team waar medewerkers steeds dezelfde procedurevragen stellen, of waar interne kennis verspreid staat over meerdere documenten en mappen.",
				WhenToUse:      "Bij onboarding van nieuwe medewerkers, bij veranderende procedures, of wanneer teamleden te veel tijd verliezen aan het zoeken naar de juiste informatie.",
				Benefits: []string{
					"Snellere onboarding van nieuwe medewerkers",
					"Minder herhaalde interne vragen aan senior medewerkers",
					"Consistente informatie doorheen het hele team",
				},
				HowAIWorks: "De assistent wordt getraind op uw bestaande documenten (handleidingen, procedures, FAQ's, productsheets). Medewerkers stellen vragen in gewone taal en krijgen direct een bronverwezen antwoord — ook als de vraag anders geformuleerd is dan in de documentatie.",
				Included: []string{
					"Opzet en training op basis van uw bestaande documenten",
					"Integratie in Slack, Teams of uw intranet",
					"Bronverwijzingen bij elk antwoord",
					"Update-procedure voor nieuwe documenten",
				},
				Excluded: []string{
					"Redactie of herstructurering van uw bestaande documentatie",
					"Meertalige configuratie (beschikbaar als meerwerk)",
					"Integratie met fysieke archieven of papieren documenten",
				},
				Integrations: []string{"Notion", "Confluence", "SharePoint", "Slack", "Microsoft Teams", "Google Drive"},
			},
		},
	},
	{
		Slug:        "salesopvolging",
		Icon:        IconFileText,
		Title:       "Salesopvolging & Callassistenten",
		Tagline:     "Meer deals sluiten, minder administratie",
		Description: "Automatiseer de opvolging na gesprekken en vergaderingen — zodat uw salesteam focust op contact maken, niet op noteren.",
		HeroProblem: "Na elk verkoopgesprek of klantmeeting verdwijnt kostbare tijd in het uitschrijven van notities, het bijwerken van het CRM en het opstellen van opvolg-e-mails. AI kan dat werk overnemen — zodat uw team meer gesprekken kan voeren en minder tijd kwijt is aan administratie.",
		HeroResults: []string{
			"CRM automatisch bijgehouden na elk gesprek",
			"Snellere en consistentere opvolging van prospects",
			"Minder administratief werk per medewerker",
			"Betere voorbereiding op vergaderingen en calls",
			"Inzicht in welke stappen in het salesproces werken",
		},
		ApproachSteps: []ApproachStep{
			{Step: "Analyse", Description: "We brengen uw huidig salesproces in kaart: tools, stappen en knelpunten."},
			{Step: "Ontwerp", Description: "We ontwerpen de automatiseringsflows op maat van uw salesmethode."},
			{Step: "Bouw", Description: "We bouwen de integraties en configureren de AI-modellen."},
			{Step: "Test", Description: "We testen met echte gesprekken en verfijnen de output."},
			{Step: "Optimalisatie", Description: "Maandelijkse review van de kwaliteit van samenvattingen en opvolgingen."},
		},
		Scope: Scope{
			Included: []string{
				"Automatisering van post-call administratie",
				"Integratie met uw CRM en agendatool",
				"Gepersonaliseerde opvolgcommunicatie",
				"Samenvattingen en actiepunten",
			},
			Excluded: []string{
				"Salestraining of -coaching",
				"Strategische herziening van uw salesproces",
				"Telefonieplatform of callcentersoftware",
				"Garanties op hogere omzet of conversiecijfers",
			},
		},
		SubServices: []SubService{
			{
				ID:             "sales-follow-up-automatisatie",
				Title:          "Sales follow-up automatisatie",
				Summary:        "Automatische opvolgmails en taken na verkoopgesprekken — gepersonaliseerd op basis van wat besproken werd, zonder dat uw team dit manueel hoeft op te stellen.",
				TargetAudience: "Salesteams en zelfstandigen die na gesprekken te laat of te generiek opvolgen, of waarbij opvolging simpelweg vergeten wordt door drukte.",
				WhenToUse:      "Wanneer deals verloren gaan omdat de opvolging te traag verloopt, of wanneer de kwaliteit van opvolgberichten te sterk varieert tussen medewerkers.",
				Benefits: []string{
					"Snellere en consistentere opvolging na elk gesprek",
					"Gepersonaliseerde berichten gebaseerd op het gesprek",
					"Minder deals die verloren gaan door te late reactie",
				},
				HowAIWorks: "AI analyseert de gespreksnotities of -transcriptie en stelt automatisch een gepersonaliseerde opvolgmail op — met de juiste toon, de besproken punten en de afgesproken volgende stap. U keurt goed en verstuurt met één klik.",
				Included: []string{
					"Opzet van opvolgflow na gesprekken",
					"Koppeling met uw CRM en e-mailtool",
					"Templates per fase van het salestraject",
					"Goedkeuringsflow voor uw team",
				},
				Excluded: []string{
					"Volledige salesstrategie of scriptontwikkeling",
					"Beheer van betaalde advertentiecampagnes",
					"Meertalige configuratie (beschikbaar als meerwerk)",
				},
				Integrations: []string{"HubSpot", "Pipedrive", "Salesforce", "Gmail", "Outlook", "Calendly"},
			},
			{
				ID:             "post-call-samenvattingen",
				Title:          "Post-call samenvattingen",
				Summary:        "Automatische samenvattingen van verkoopgesprekken en vergaderingen — met actiepunten, beslissingen en volgende stappen — klaar in uw CRM of gedeelde werkruimte.",
				TargetAudience: "Iedereen die regelmatig klantgesprekken voert en te veel tijd verliest aan het handmatig uitschrijven van notities achteraf.",
				WhenToUse:      "Wanneer notities onvolledig zijn of te lang op zich laten wachten, of wanneer afspraken uit gesprekken niet consequent worden opgevolgd.",
				Benefits: []string{
					"Tijdsbesparing van 15–30 minuten per gesprek",
					"Volledigere en consistentere gespreksverslagen",
					"Actiepunten direct beschikbaar voor opvolging",
				},
				HowAIWorks: "AI transcribeert het gesprek en filtert de relevante informatie eruit: besproken onderwerpen, genomen beslissingen, toegewezen actiepunten en de afgesproken volgende stap. De samenvatting verschijnt automatisch in uw CRM of werkruimte.",
				Included: []string{
					"Opzet van transcriptie- en samenvattingsflow",
					"Koppeling met uw vergader- en CRM-tool",
					"Structurering van output in uw gewenst format",
					"Review na eerste 10 gesprekken",
				},
				Excluded: []string{
					"Opname van fysieke vergaderingen of telefoongesprekken (enkel online)",
					"Volledige CRM-herinrichting",
					"Meertalige transcriptie (beschikbaar als meerwerk)",
				},
				Integrations: []string{"Zoom", "Microsoft Teams", "Google Meet", "HubSpot", "Notion", "Pipedrive"},
			},
			{
				ID:             "crm-notities-automatisch",
				Title:          "CRM-notities automatisch invullen",
				Summary:        "Na elk gesprek of contactmoment worden de relevante CRM-velden automatisch bijgewerkt — zonder dat uw team dit handmatig hoeft in te geven.",
				TargetAudience: "Salesteams waarvan het CRM structureel onvolledig of verouderd is omdat medewerkers te weinig tijd hebben om het bij te houden.",
				WhenToUse:      "Wanneer het CRM niet weerspiegelt wat er in de pipeline speelt, of wanneer medewerkers te veel tijd kwijt zijn aan datainvoer na gesprekken.",
				Benefits: []string{
					"CRM altijd up-to-date zonder manuele invoer",
					"Betere rapportage en pipelineoverzicht",
					"Minder administratielast voor uw salesteam",
				},
				HowAIWorks: "AI extraheert relevante gegevens uit gesprekstranscripties, e-mails en formulieren en vult automatisch de juiste CRM-velden in: contactgegevens, dealfase, besproken producten, volgende actie en datum.",
				Included: []string{
					"Opzet van extractie- en invullogica",
					"Koppeling met uw CRM",
					"Mapping van gegevens naar uw veldstructuur",
					"Validatiecheck en foutrapportage",
				},
				Excluded: []string{
					"Volledige CRM-migratie of -herinrichting",
					"Datakwaliteitsaudit van historische records",
					"Integratie met systemen zonder API",
				},
				Integrations: []string{"HubSpot", "Pipedrive", "Salesforce", "Notion", "Airtable"},
			},
			{
				ID:             "meeting-prep-briefs",
				Title:          "Meeting prep briefs",
				Summary:        "Automatisch gegenereerde gespreksvoorbereiding vóór elk klantcontact: relevante informatie uit het CRM, vorige interacties, openstaande punten en gesprekshandleiding.",
				TargetAudience: "Salesmedewerkers en consultants die meerdere klantgesprekken per dag voeren en te weinig tijd hebben om elke afspraak grondig voor te bereiden.",
				WhenToUse:      "Wanneer medewerkers onvoldoende voorbereid in gesprekken stappen, of wanneer relevante klantinformatie te verspreid staat om snel te raadplegen.",
				Benefits: []string{
					"Betere voorbereiding in minder tijd",
					"Professionelere gespreksvoering",
					"Meer relevant en persoonlijk contact met klanten",
				},
				HowAIWorks: "AI verzamelt automatisch alle relevante klantinformatie voor de afspraak: vorige gesprekken, openstaande offertes, contacthistoriek en relevante context. Het genereert een beknopte brief die klaar staat in uw agenda of CRM vóór het gesprek.",
				Included: []string{
					"Opzet van automatische briefflow",
					"Koppeling met uw agenda en CRM",
					"Format op maat van uw gespreksstructuur",
					"Review na eerste 20 briefs",
				},
				Excluded: []string{
					"Externe data buiten uw eigen CRM en tools",
					"Volledige salesscripts of gesprekscoaching",
					"Integratie met telefonieplatformen",
				},
				Integrations: []string{"Google Calendar", "Outlook", "HubSpot", "Pipedrive", "Salesforce", "Notion"},
			},
		},
	},
	{
		Slug:        "onboarding-backoffice",
		Icon:        IconWorkflow,
		Title:       "Client onboarding & Backoffice",
		Tagline:     "Nieuwe klanten vlekkeloos verwelkomen, backoffice op autopilot",
		Description: "Automatiseer de administratieve kant van uw bedrijf — van eerste intakeformulier tot interne taakcreatie — zodat u uw tijd besteedt aan werk dat er écht toe doet.",
		HeroProblem: "Elke nieuwe klant meenemen kost tijd: formulieren, welkomstmails, contracten, checklists, interne taken aanmaken. Als dat handmatig verloopt, is het tijdrovend, foutgevoelig en inconsistent. AI en automatisering maken het mogelijk om dit proces schaalbaar, professioneel en grotendeels handsfree te organiseren.",
		HeroResults: []string{
			"Elke nieuwe klant een consistente, professionele onboarding-ervaring",
			"Minder manuele administratie bij elke nieuwe samenwerking",
			"Interne taken automatisch aangemaakt en toegewezen",
			"Minder fouten door manueel kopiëren van gegevens",
			"Meer schaalbaarheid zonder bijkomende administratieve last",
		},
		ApproachSteps: []ApproachStep{
			{Step: "Analyse", Description: "We brengen uw huidig onboarding- en backofficeproces stap voor stap in kaart."},
			{Step: "Ontwerp", Description: "We ontwerpen de geautomatiseerde flows en trigger-logica."},
			{Step: "Bouw", Description: "We bouwen de automatiseringen en koppelen ze aan uw tools."},
			{Step: "Test", Description: "We testen het proces met een echte onboarding en stellen bij."},
			{Step: "Optimalisatie", Description: "Periodieke review op basis van feedback van uw team en klanten."},
		},
		Scope: Scope{
			Included: []string{
				"Automatisering van uw bestaande onboardingproces",
				"Integratie met uw projectmanagement- en communicatietools",
				"Documentgeneratie op basis van klantdata",
				"Interne taakcreatie en toewijzing",
			},
			Excluded: []string{
				"Juridisch bindende contracten opstellen (raadpleeg uw adviseur)",
				"Volledige bedrijfsprocesinrichting of BPM-consulting",
				"Integratie met systemen zonder openbare API",
				"Facturatie of boekhoudsoftware (tenzij specifiek overeengekomen)",
			},
		},
		SubServices: []SubService{
			{
				ID:             "automatische-client-onboarding",
				Title:          "Automatische client onboarding flow",
				Summary:        "Een geautomatiseerde onboardingflow die wordt getriggerd zodra een nieuwe klant tekent of betaalt — met welkomstmails, checklists, taakaanmaak en toegangslinks die automatisch worden verzonden.",
				TargetAudience: "Dienstverleners en consultants die bij elke nieuwe klant dezelfde onboardingstappen doorlopen en dit handmatig, tijdrovend en inconsistent verloopt.",
				WhenToUse:      "Wanneer nieuwe klanten te lang wachten op welkomstcommunicatie of toegang tot documenten, of wanneer uw team regelmatig stappen vergeet bij de opstart van een nieuwe samenwerking.",
				Benefits: []string{
					"Professionele eerste indruk bij elke nieuwe klant",
					"Besparing van 2–4 uur administratie per nieuwe klant",
					"Consistentie ongeacht drukte of personeelswissels",
				},
				HowAIWorks: "Zodra de trigger-actie plaatsvindt (ondertekend contract, betaling, ingevuld formulier), start de flow automatisch: AI personaliseert de welkomstcommunicatie op basis van klantgegevens en stuurt alle documenten en toegangslinks op het juiste moment.",
				Included: []string{
					"Opzet van onboardingflow met minimaal 5 stappen",
					"Koppeling met uw CRM, e-mailtool en projectmanagementtool",
					"Personalisatie van communicatie op basis van klantdata",
					"Documentatie van de flow voor intern gebruik",
				},
				Excluded: []string{
					"Juridisch advies over contractinhoud",
					"Grafisch ontwerp van onboardingdocumenten",
					"Integratie met boekhoud- of facturatiesoftware (op aanvraag)",
				},
				Integrations: []string{"HubSpot", "Notion", "Asana", "Gmail", "Docusign", "Stripe", "Slack"},
			},
			{
				ID:             "intakeformulieren-dataverzameling",
				Title:          "Intakeformulieren & dataverzameling",
				Summary:        "Slimme intakeformulieren die klantgegevens verzamelen en automatisch doorsturen naar uw CRM, projecttool of boekhouding — zonder handmatig kopiëren.",
				TargetAudience: "Bedrijven die bij elke nieuwe klant of aanvraag dezelfde basisgegevens opvragen en die vervolgens handmatig in meerdere systemen invoeren.",
				WhenToUse:      "Wanneer er te veel tijd verloren gaat aan datainvoer, of wanneer gegevens niet consistent overeenkomen in uw verschillende systemen.",
				Benefits: []string{
					"Geen dubbele datainvoer meer in meerdere systemen",
					"Foutloze overdracht van klantgegevens",
					"Snellere start van samenwerking na ontvangst van formulier",
				},
				HowAIWorks: "Het systeem verwerkt de ingevulde formulierdata automatisch: het vult de juiste velden in uw CRM in, maakt een projectrecord aan, stuurt een bevestiging naar de klant en triggert de eerste stap van de onboardingflow.",
				Included: []string{
					"Opzet van intakeformulier op maat",
					"Koppeling met uw CRM en projecttool",
					"Automatische bevestigingsmail naar de klant",
					"Foutvalidatie en datakwaliteitscontrole",
				},
				Excluded: []string{
					"Juridisch bindende formulieren of akkoordverklaringen",
					"Meertalige formulieren (beschikbaar als meerwerk)",
					"Papieren of fysieke intakeprocessen",
				},
				Integrations: []string{"Typeform", "Tally", "HubSpot", "Notion", "Airtable", "Gmail", "Pipedrive"},
			},
			{
				ID:             "interne-taakcreatie-handoff",
				Title:          "Interne taakcreatie en handoff",
				Summary:        "Automatische aanmaak van interne taken en projectstappen wanneer een nieuwe klant of aanvraag binnenkomt — toegewezen aan de juiste medewerker op het juiste moment.",
				TargetAudience: "Teams die bij elke nieuwe klant of project dezelfde interne stappen moeten doorlopen en dit handmatig plannen en toewijzen.",
				WhenToUse:      "Wanneer taken te laat worden aangemaakt, wanneer de handoff tussen medewerkers onduidelijk is, of wanneer stappen worden vergeten door de dagelijkse drukte.",
				Benefits: []string{
					"Elk project start gestructureerd op, zonder manuele opstart",
					"Duidelijke verantwoordelijkheden van bij het begin",
					"Minder vergeten stappen in de projectopstart",
				},
				HowAIWorks: "Op basis van het type klant of project bepaalt het systeem welke takentemplates van toepassing zijn, maakt de taken aan in uw projecttool en wijst ze toe aan de juiste medewerker op basis van beschikbaarheid of expertise.",
				Included: []string{
					"Opzet van takentemplates per projecttype",
					"Koppeling met uw projectmanagementtool",
					"Toewijzingslogica op maat",
					"Notificaties bij nieuwe taken",
				},
				Excluded: []string{
					"Volledige projectmethodologie of -coaching",
					"Tijdregistratie of facturatiekoppeling (op aanvraag)",
					"Integratie met fysieke planningssystemen",
				},
				Integrations: []string{"Asana", "Monday.com", "Notion", "Trello", "ClickUp", "Slack", "HubSpot"},
			},
			{
				ID:             "document-email-automatisatie",
				Title:          "Document- en e-mailautomatisatie",
				Summary:        "Automatische generatie en verzending van terugkerende documenten en e-mails: samenvattingen, bevestigingen, herinneringen, rapportages — op het juiste moment, met de juiste inhoud.",
				TargetAudience: "Bedrijven die regelmatig dezelfde soort documenten of e-mails produceren en dit handmatig tijdrovend is — zoals offertes, rapporten, reminders of statusupdates.",
				WhenToUse:      "Wanneer terugkerende documenten en communicatie te veel tijd vragen van uw team, of wanneer de kwaliteit of timing onvoldoende consistent is.",
				Benefits: []string{
					"Tijdsbesparing op repetitieve documenttaken",
					"Consistentere communicatie richting klanten",
					"Minder risico op vergeten mails of documenten",
				},
				HowAIWorks: "Op basis van triggers (projectstatus, deadline, klantactie) genereert het systeem automatisch het juiste document of de juiste e-mail — met de relevante gegevens ingevuld vanuit uw CRM of projecttool — en verstuurt of deelt het op het juiste moment.",
				Included: []string{
					"Opzet van minimaal 3 document- of e-mailflows",
					"Koppeling met uw CRM, projecttool en e-mailplatform",
					"Templates op maat van uw merk en processen",
					"Review na eerste maand gebruik",
				},
				Excluded: []string{
					"Juridisch bindende documentinhoud",
					"Facturatie of boekhoudintegratie (op aanvraag)",
					"Grafisch ontwerp van documenten",
				},
				Integrations: []string{"Gmail", "Outlook", "Notion", "HubSpot", "Google Docs", "Docusign", "Airtable"},
			},
		},
	},
}

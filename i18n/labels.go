package i18n

// Label keys used by screens and receipts.
const (
	FirstName      = "firstName"
	LastName       = "lastName"
	Email          = "email"
	Cellphone      = "cellphone"
	Nationality    = "nationality"
	Birthday       = "birthday"
	TravelingFrom  = "travelingFrom"
	TravelingNext  = "travelingNext"
	CheckIn        = "checkIn"
	CheckOut       = "checkOut"
	ReceiptTitle   = "receiptTitle"
	Folio          = "folio"
	GuestDetails   = "guestDetails"
	StayPeriod     = "stayPeriod"
	IDAttached     = "idAttached"
	NotAvailable   = "notAvailable"
	RulesTitle     = "rulesTitle"
	RulesAccepted  = "rulesAccepted"
	PenaltiesTitle = "penaltiesTitle"
	Declaration    = "declaration"
	GuestSignature = "guestSignature"
	NoSignature    = "noSignature"
	RegisteredAt   = "registeredAt"
	Valuation      = "valuation"
	RulesNotice    = "rulesNotice"
	StorageWarning = "storageWarning"
	ShareSubject   = "shareSubject"
	ShareBody      = "shareBody"
)

var labels = map[string]map[string]string{
	"es": {
		FirstName:      "Nombre",
		LastName:       "Apellido",
		Email:          "Email",
		Cellphone:      "Celular",
		Nationality:    "Nacionalidad",
		Birthday:       "Nacimiento",
		TravelingFrom:  "Procedencia",
		TravelingNext:  "Destino",
		CheckIn:        "Llegada",
		CheckOut:       "Salida",
		ReceiptTitle:   "Certificado de Registro y Aceptación",
		Folio:          "Folio de Registro",
		GuestDetails:   "Detalles del Huésped",
		StayPeriod:     "Periodo de Estancia",
		IDAttached:     "Documento de Identificación Adjunto",
		NotAvailable:   "No disponible",
		RulesTitle:     "Reglamento de Convivencia",
		RulesAccepted:  "Aceptado formalmente por el huésped",
		PenaltiesTitle: "Penalidades",
		Declaration:    "Declaro bajo protesta de decir verdad que toda la información proporcionada es correcta y que he sido informado de todas las normas de convivencia del hotel. Me comprometo a respetarlas plenamente, aceptando las penalidades descritas en caso de incumplimiento o daño a la propiedad.",
		GuestSignature: "Firma del Huésped",
		NoSignature:    "Firma no registrada",
		RegisteredAt:   "Fecha de Registro",
		Valuation:      "Valuación",
		RulesNotice:    "En caso de incumplir cualquiera de las reglas del hotel, se podrá cancelar su reserva sin ningún tipo de reembolso. En caso de daño o pérdida de toallas, llaves, o cualquier artículo del hotel se cobrará una penalización.",
		StorageWarning: "No se pudo guardar el registro en este dispositivo. Avise a recepción.",
		ShareSubject:   "Registro de huésped",
		ShareBody:      "Hola %s, aquí está su registro en %s: %s",
	},
	"en": {
		FirstName:      "First Name",
		LastName:       "Last Name",
		Email:          "Email",
		Cellphone:      "Cellphone",
		Nationality:    "Nationality",
		Birthday:       "Birthday",
		TravelingFrom:  "Traveling From",
		TravelingNext:  "Next Destination",
		CheckIn:        "Check-In",
		CheckOut:       "Check-Out",
		ReceiptTitle:   "Registration and Acceptance Certificate",
		Folio:          "Registration Number",
		GuestDetails:   "Guest Details",
		StayPeriod:     "Stay Period",
		IDAttached:     "Attached Identification Document",
		NotAvailable:   "Not available",
		RulesTitle:     "House Rules",
		RulesAccepted:  "Formally accepted by the guest",
		PenaltiesTitle: "Penalties",
		Declaration:    "I declare that all the information provided is correct and that I have been informed of all the house rules of the hotel. I commit to fully respecting them and accept the penalties described in case of non-compliance or damage to property.",
		GuestSignature: "Guest Signature",
		NoSignature:    "No signature recorded",
		RegisteredAt:   "Registered On",
		Valuation:      "Assessment",
		RulesNotice:    "In case of breaking any of the hotel rules, your reservation may be canceled without any refund. In case of damage or loss of towels, keys, or any hotel item a penalty will be charged.",
		StorageWarning: "The registration could not be saved on this device. Please tell the front desk.",
		ShareSubject:   "Guest registration",
		ShareBody:      "Hi %s, here is your registration at %s: %s",
	},
	"fr": {
		FirstName:      "Prénom",
		LastName:       "Nom",
		Email:          "E-mail",
		Cellphone:      "Portable",
		Nationality:    "Nationalité",
		Birthday:       "Date de naissance",
		TravelingFrom:  "Provenance",
		TravelingNext:  "Destination",
		CheckIn:        "Arrivée",
		CheckOut:       "Départ",
		ReceiptTitle:   "Certificat d'enregistrement et d'acceptation",
		Folio:          "Numéro d'enregistrement",
		GuestDetails:   "Détails du client",
		StayPeriod:     "Période de séjour",
		IDAttached:     "Pièce d'identité jointe",
		NotAvailable:   "Non disponible",
		RulesTitle:     "Règlement intérieur",
		RulesAccepted:  "Accepté formellement par le client",
		PenaltiesTitle: "Pénalités",
		Declaration:    "Je déclare que toutes les informations fournies sont exactes et que j'ai été informé de toutes les règles de l'hôtel. Je m'engage à les respecter pleinement et j'accepte les pénalités décrites en cas de non-respect ou de dommage.",
		GuestSignature: "Signature du client",
		NoSignature:    "Aucune signature",
		RegisteredAt:   "Enregistré le",
		Valuation:      "Évaluation",
		RulesNotice:    "En cas de non-respect des règles de l'hôtel, votre réservation peut être annulée sans remboursement. En cas de dommage ou de perte de serviettes, clés ou tout autre article de l'hôtel, une pénalité sera facturée.",
		StorageWarning: "L'enregistrement n'a pas pu être sauvegardé sur cet appareil. Veuillez prévenir la réception.",
		ShareSubject:   "Enregistrement du client",
		ShareBody:      "Bonjour %s, voici votre enregistrement à %s : %s",
	},
	"it": {
		FirstName:      "Nome",
		LastName:       "Cognome",
		Email:          "Email",
		Cellphone:      "Cellulare",
		Nationality:    "Nazionalità",
		Birthday:       "Data di nascita",
		TravelingFrom:  "Provenienza",
		TravelingNext:  "Destinazione",
		CheckIn:        "Arrivo",
		CheckOut:       "Partenza",
		ReceiptTitle:   "Certificato di registrazione e accettazione",
		Folio:          "Numero di registrazione",
		GuestDetails:   "Dettagli dell'ospite",
		StayPeriod:     "Periodo di soggiorno",
		IDAttached:     "Documento d'identità allegato",
		NotAvailable:   "Non disponibile",
		RulesTitle:     "Regolamento della struttura",
		RulesAccepted:  "Accettato formalmente dall'ospite",
		PenaltiesTitle: "Penali",
		Declaration:    "Dichiaro che tutte le informazioni fornite sono corrette e di essere stato informato di tutte le regole dell'hotel. Mi impegno a rispettarle pienamente, accettando le penali descritte in caso di inadempienza o danno alla proprietà.",
		GuestSignature: "Firma dell'ospite",
		NoSignature:    "Firma non registrata",
		RegisteredAt:   "Registrato il",
		Valuation:      "Valutazione",
		RulesNotice:    "In caso di violazione delle regole dell'hotel, la prenotazione potrà essere annullata senza rimborso. In caso di danno o perdita di asciugamani, chiavi o qualsiasi articolo dell'hotel verrà addebitata una penale.",
		StorageWarning: "Non è stato possibile salvare la registrazione su questo dispositivo. Avvisare la reception.",
		ShareSubject:   "Registrazione dell'ospite",
		ShareBody:      "Ciao %s, ecco la tua registrazione presso %s: %s",
	},
	"de": {
		FirstName:      "Vorname",
		LastName:       "Nachname",
		Email:          "E-Mail",
		Cellphone:      "Handy",
		Nationality:    "Nationalität",
		Birthday:       "Geburtsdatum",
		TravelingFrom:  "Herkunft",
		TravelingNext:  "Nächstes Ziel",
		CheckIn:        "Check-in",
		CheckOut:       "Check-out",
		ReceiptTitle:   "Registrierungs- und Annahmebestätigung",
		Folio:          "Registrierungsnummer",
		GuestDetails:   "Gastdaten",
		StayPeriod:     "Aufenthaltszeitraum",
		IDAttached:     "Beigefügtes Ausweisdokument",
		NotAvailable:   "Nicht verfügbar",
		RulesTitle:     "Hausordnung",
		RulesAccepted:  "Vom Gast formell angenommen",
		PenaltiesTitle: "Strafgebühren",
		Declaration:    "Ich erkläre, dass alle angegebenen Informationen korrekt sind und dass ich über alle Regeln des Hotels informiert wurde. Ich verpflichte mich, sie vollständig einzuhalten, und akzeptiere die beschriebenen Strafgebühren bei Verstößen oder Sachschäden.",
		GuestSignature: "Unterschrift des Gastes",
		NoSignature:    "Keine Unterschrift",
		RegisteredAt:   "Registriert am",
		Valuation:      "Schätzung",
		RulesNotice:    "Bei Verstoß gegen die Hausordnung kann Ihre Reservierung ohne Erstattung storniert werden. Bei Beschädigung oder Verlust von Handtüchern, Schlüsseln oder anderen Gegenständen des Hotels wird eine Gebühr berechnet.",
		StorageWarning: "Die Registrierung konnte auf diesem Gerät nicht gespeichert werden. Bitte informieren Sie die Rezeption.",
		ShareSubject:   "Gästeregistrierung",
		ShareBody:      "Hallo %s, hier ist Ihre Registrierung im %s: %s",
	},
	"pt": {
		FirstName:      "Nome",
		LastName:       "Sobrenome",
		Email:          "E-mail",
		Cellphone:      "Celular",
		Nationality:    "Nacionalidade",
		Birthday:       "Data de nascimento",
		TravelingFrom:  "Procedência",
		TravelingNext:  "Próximo destino",
		CheckIn:        "Entrada",
		CheckOut:       "Saída",
		ReceiptTitle:   "Certificado de Registro e Aceitação",
		Folio:          "Número de Registro",
		GuestDetails:   "Dados do Hóspede",
		StayPeriod:     "Período de Estadia",
		IDAttached:     "Documento de Identificação Anexado",
		NotAvailable:   "Não disponível",
		RulesTitle:     "Regulamento de Convivência",
		RulesAccepted:  "Aceito formalmente pelo hóspede",
		PenaltiesTitle: "Penalidades",
		Declaration:    "Declaro que todas as informações fornecidas são corretas e que fui informado de todas as normas do hotel. Comprometo-me a respeitá-las plenamente, aceitando as penalidades descritas em caso de descumprimento ou dano à propriedade.",
		GuestSignature: "Assinatura do Hóspede",
		NoSignature:    "Assinatura não registrada",
		RegisteredAt:   "Registrado em",
		Valuation:      "Avaliação",
		RulesNotice:    "Em caso de descumprimento de qualquer regra do hotel, sua reserva poderá ser cancelada sem reembolso. Em caso de dano ou perda de toalhas, chaves ou qualquer item do hotel será cobrada uma penalidade.",
		StorageWarning: "Não foi possível salvar o registro neste dispositivo. Avise a recepção.",
		ShareSubject:   "Registro do hóspede",
		ShareBody:      "Olá %s, aqui está o seu registro no %s: %s",
	},
}

// Label returns the text for key in lang, falling back to Spanish and then
// to the key itself.
func Label(lang, key string) string {
	if v, ok := labels[Normalize(lang, "")][key]; ok {
		return v
	}
	if v, ok := labels["es"][key]; ok {
		return v
	}
	return key
}

// Labels returns a copy of the whole table for lang.
func Labels(lang string) map[string]string {
	src := labels[Normalize(lang, "")]
	out := make(map[string]string, len(src))
	for k, v := range src {
		out[k] = v
	}
	return out
}

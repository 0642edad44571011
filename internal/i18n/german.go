package i18n

var german = map[string]string{
	// Layout and errors
	"Save configuration": "Konfiguration speichern",
	"The configuration options have been saved.": "Die Konfiguration wurde gespeichert.",
	"%s field is required.":                      "%s ist ein Pflichtfeld.",
	"- None -":                                   "- Keine -",
	"Configuration":                              "Konfiguration",

	// Ethereum signup settings
	"Ethereum signup settings": "Einstellungen für die Ethereum-Registrierung",
	"Signup settings":          "Registrierungseinstellungen",
	"Require email to sign up.": "E-Mail-Adresse für die Registrierung verlangen.",
	"Who can register accounts using Ethereum signup?": "Wer kann sich mit der Ethereum-Registrierung ein Konto anlegen?",
	"Visitors can directly log in.":                     "Besucher können sich direkt anmelden.",
	"Require Administrator to approve accounts.":        "Konten müssen von einem Administrator freigegeben werden.",
	"Require email confirmation before activating accounts.": "E-Mail-Bestätigung vor der Aktivierung von Konten verlangen.",
	"Display Ethereum for everybody":                    "Ethereum für alle anzeigen",
	"Redirect after login":                              "Weiterleitung nach der Anmeldung",
	"Path relative to the site root.":                   "Pfad relativ zum Stammverzeichnis der Website.",
	"Registration Role":                                 "Rolle bei der Registrierung",
	"Registration text":                                 "Registrierungstext",
	"Register link text":                                "Text des Registrierungslinks",
	"Text for registration link.":                       "Text für den Registrierungslink.",
	"Terms text":                                        "Nutzungsbedingungen",
	"Login text":                                        "Anmeldetext",
	"Login link text":                                   "Text des Anmeldelinks",
	"Text for login link.":                              "Text für den Anmeldelink.",
	"This text the user will be presented to digitally sign on login.": "Diesen Text signiert der Benutzer bei der Anmeldung digital.",
	"If you do not require email make sure that visitors are not asked to verify their email address in the account settings.": "Wenn keine E-Mail-Adresse verlangt wird, darf in den Kontoeinstellungen keine Bestätigung der E-Mail-Adresse verlangt werden.",
	"Users need a web3 provider in the browser to sign messages. Unchecking hides the Ethereum signup option from browsers without web3.": "Zum Signieren wird ein web3-Anbieter im Browser benötigt. Ohne diese Option wird die Ethereum-Registrierung in Browsern ohne web3 ausgeblendet.",
	"This role is assigned to every user who signs up with Ethereum in addition to Authenticated user.": "Diese Rolle erhält jeder Benutzer, der sich mit Ethereum registriert, zusätzlich zu Authentifizierter Benutzer.",
	"This text the user will be presented to digitally sign on registration.": "Diesen Text signiert der Benutzer bei der Registrierung digital.",
	"Configure how visitors register and log in with an Ethereum wallet.": "Legt fest, wie sich Besucher mit einer Ethereum-Wallet registrieren und anmelden.",
	"Configuration pages": "Konfigurationsseiten",
}

package i18n

// Key identifies a translatable string.
type Key string

const (
	MainTitle                   Key = "mainTitle"
	SubTitle                    Key = "subTitle"
	LabelBalance                Key = "labelBalance"
	PlaceholderBalance          Key = "placeholderBalance"
	LabelRiskType               Key = "labelRiskType"
	OptionPercentage            Key = "optionPercentage"
	OptionFixed                 Key = "optionFixed"
	LabelRiskValue              Key = "labelRiskValue"
	PlaceholderRiskValuePercent Key = "placeholderRiskValuePercent"
	PlaceholderRiskValueFixed   Key = "placeholderRiskValueFixed"
	LabelStopLoss               Key = "labelStopLoss"
	PlaceholderStopLoss         Key = "placeholderStopLoss"
	LabelInstrument             Key = "labelInstrument"
	SelectInstrument            Key = "selectInstrumentPlaceholder"
	CalculateButton             Key = "calculateButton"
	ResultHeading               Key = "resultHeading"
	ResultInitial               Key = "resultInitial"
	Calculating                 Key = "calculating"

	LotUnitStandard Key = "lotUnitStandard"
	LotUnitMini     Key = "lotUnitMini"
	LotUnitMicro    Key = "lotUnitMicro"
	LotUnitSubMicro Key = "lotUnitSubMicro"

	ErrorBalancePositive   Key = "errorBalancePositive"
	ErrorRiskValuePositive Key = "errorRiskValuePositive"
	ErrorStopLossPositive  Key = "errorStopLossPositive"
	ErrorInstrumentPip     Key = "errorInstrumentPipValue"
	ErrorRiskPercentRange  Key = "errorRiskPercentRange"
	ErrorRiskFixedRange    Key = "errorRiskFixedRange"
	ErrorRiskType          Key = "errorRiskType"
	ErrorRiskPerLot        Key = "errorRiskPerLot"
	ErrorResultInvalid     Key = "errorResultInvalid"
	ErrorSelectInstrument  Key = "errorSelectInstrument"
	UnknownError           Key = "unknownError"

	AriaLangButton       Key = "ariaLangButton"
	AriaThemeButtonLight Key = "ariaThemeButtonLight"
	AriaThemeButtonDark  Key = "ariaThemeButtonDark"
)

var translations = map[Lang]map[Key]string{
	EN: {
		MainTitle:                   "Forex Risk Calculator",
		SubTitle:                    "CFD Position Size Calculator",
		LabelBalance:                "Account Balance (USD):",
		PlaceholderBalance:          "e.g., 10000",
		LabelRiskType:               "Risk Type:",
		OptionPercentage:            "Risk in Percentage (%)",
		OptionFixed:                 "Risk in Fixed Amount ($)",
		LabelRiskValue:              "Risk Value:",
		PlaceholderRiskValuePercent: "e.g., 1 (for 1%)",
		PlaceholderRiskValueFixed:   "e.g., 100 (for $100)",
		LabelStopLoss:               "Stop-Loss (pips):",
		PlaceholderStopLoss:         "e.g., 50",
		LabelInstrument:             "Instrument:",
		SelectInstrument:            "Select Instrument...",
		CalculateButton:             "Calculate Position Size",
		ResultHeading:               "Calculated Position Size:",
		ResultInitial:               "Result will appear here.",
		Calculating:                 "Calculating...",
		LotUnitStandard:             "Standard Lot(s)",
		LotUnitMini:                 "Mini Lot(s)",
		LotUnitMicro:                "Micro Lot(s)",
		LotUnitSubMicro:             "Standard Lot(s) (sub-micro)",
		ErrorBalancePositive:        "Account Balance must be a positive number.",
		ErrorRiskValuePositive:      "Risk Value must be a positive number.",
		ErrorStopLossPositive:       "Stop-Loss (pips) must be a positive number.",
		ErrorInstrumentPip:          "Pip value definition missing or invalid for selected instrument.",
		ErrorRiskPercentRange:       "Risk percentage cannot realistically exceed 100%.",
		ErrorRiskFixedRange:         "Fixed risk amount cannot exceed account balance.",
		ErrorRiskType:               "Invalid risk type selected.",
		ErrorRiskPerLot:             "Calculated risk per lot is zero or negative.",
		ErrorResultInvalid:          "Calculation resulted in an invalid size.",
		UnknownError:                "An unknown error occurred.",
		ErrorSelectInstrument:       "Please select an instrument.",
		AriaLangButton:              "Switch language",
		AriaThemeButtonLight:        "Activate light mode",
		AriaThemeButtonDark:         "Activate dark mode",
	},
	FR: {
		MainTitle:                   "Calculateur de Risque Forex",
		SubTitle:                    "Calculateur de Taille de Position CFD",
		LabelBalance:                "Solde du Compte (USD) :",
		PlaceholderBalance:          "ex : 10000",
		LabelRiskType:               "Type de Risque :",
		OptionPercentage:            "Risque en Pourcentage (%)",
		OptionFixed:                 "Risque Montant Fixe ($)",
		LabelRiskValue:              "Valeur du Risque :",
		PlaceholderRiskValuePercent: "ex : 1 (pour 1%)",
		PlaceholderRiskValueFixed:   "ex : 100 (pour 100$)",
		LabelStopLoss:               "Stop-Loss (pips) :",
		PlaceholderStopLoss:         "ex : 50",
		LabelInstrument:             "Instrument :",
		SelectInstrument:            "Sélectionnez l'instrument...",
		CalculateButton:             "Calculer la Taille de Position",
		ResultHeading:               "Taille de Position Calculée :",
		ResultInitial:               "Le résultat apparaîtra ici.",
		Calculating:                 "Calcul en cours...",
		LotUnitStandard:             "Lot(s) Standard",
		LotUnitMini:                 "Mini Lot(s)",
		LotUnitMicro:                "Micro Lot(s)",
		LotUnitSubMicro:             "Lot(s) Standard (sub-micro)",
		ErrorBalancePositive:        "Le solde du compte doit être positif.",
		ErrorRiskValuePositive:      "La valeur du risque doit être positive.",
		ErrorStopLossPositive:       "Le Stop-Loss (pips) doit être positif.",
		ErrorInstrumentPip:          "Valeur du pip manquante/invalide pour l'instrument.",
		ErrorRiskPercentRange:       "Le % de risque ne peut pas dépasser 100%.",
		ErrorRiskFixedRange:         "Le risque fixe ne peut pas dépasser le solde.",
		ErrorRiskType:               "Type de risque invalide.",
		ErrorRiskPerLot:             "Risque par lot calculé nul ou négatif.",
		ErrorResultInvalid:          "Calcul a produit une taille invalide.",
		UnknownError:                "Une erreur inconnue est survenue.",
		ErrorSelectInstrument:       "Veuillez sélectionner un instrument.",
		AriaLangButton:              "Changer la langue",
		AriaThemeButtonLight:        "Activer le mode clair",
		AriaThemeButtonDark:         "Activer le mode sombre",
	},
}

// Package i18n holds the user-facing strings in English and Brazilian
// Portuguese and picks a language from flags, environment or system locale.
package i18n

import (
	"log"
	"os"
	"strings"

	"github.com/jeandeaual/go-locale"
)

// EnvLang overrides system locale detection.
const EnvLang = "POMOCAT_LANG"

const (
	LangEnglish    = "en"
	LangPortuguese = "pt"
)

var translations = map[string]map[string]string{
	"notice.long_break.title": {
		"en": "Congratulations! 🎉",
		"pt": "Parabéns! 🎉",
	},
	"notice.long_break.body": {
		"en": "Time for a long break!",
		"pt": "Hora do intervalo longo!",
	},
	"notice.short_break.title": {
		"en": "Good job! ☕",
		"pt": "Bom trabalho! ☕",
	},
	"notice.short_break.body": {
		"en": "Time for a break!",
		"pt": "Hora do intervalo!",
	},
	"notice.focus.title": {
		"en": "Let's go! 💪",
		"pt": "Vamos lá! 💪",
	},
	"notice.focus.body": {
		"en": "Time to focus!",
		"pt": "Hora de focar!",
	},
	"water.title": {
		"en": "Water 💧",
		"pt": "Água 💧",
	},
	"water.body": {
		"en": "Time to drink some water!",
		"pt": "Hora de beber água!",
	},
	"mode.work": {
		"en": "Focus",
		"pt": "Foco",
	},
	"mode.short_break": {
		"en": "Short break",
		"pt": "Intervalo curto",
	},
	"mode.long_break": {
		"en": "Long break",
		"pt": "Intervalo longo",
	},
	"Start": {
		"pt": "Iniciar",
	},
	"Pause": {
		"pt": "Pausar",
	},
	"Resume": {
		"pt": "Continuar",
	},
	"Stop": {
		"pt": "Parar",
	},
	"Reset": {
		"pt": "Resetar",
	},
	"Settings": {
		"pt": "Configurações",
	},
	"Show": {
		"pt": "Mostrar",
	},
	"Quit": {
		"pt": "Sair",
	},
	"Save": {
		"pt": "Salvar",
	},
	"Cancel": {
		"pt": "Cancelar",
	},
	"Sessions": {
		"pt": "Sessões",
	},
	"Next water": {
		"pt": "Próxima água",
	},
	"Work (min)": {
		"pt": "Foco (min)",
	},
	"Short break (min)": {
		"pt": "Intervalo curto (min)",
	},
	"Long break (min)": {
		"pt": "Intervalo longo (min)",
	},
	"Sessions until long break": {
		"pt": "Sessões até o intervalo longo",
	},
	"Water reminder (min)": {
		"pt": "Lembrete de água (min)",
	},
	"paused": {
		"pt": "pausado",
	},
}

// Catalog translates message keys into one language.
type Catalog struct {
	lang string
}

// New returns a catalog for the given language; unknown languages fall back to English.
func New(lang string) *Catalog {
	return &Catalog{lang: normalize(lang)}
}

// Detect picks the language from the explicit value, then EnvLang, then the system locale.
func Detect(explicit string) *Catalog {
	if value := strings.TrimSpace(explicit); value != "" {
		return New(value)
	}
	if forced := strings.TrimSpace(os.Getenv(EnvLang)); forced != "" {
		log.Printf("%s is set to: %q", EnvLang, forced)
		return New(forced)
	}

	userLocales, err := locale.GetLocales()
	if err != nil {
		log.Printf("could not get user locale, defaulting to english: %v", err)
		return New(LangEnglish)
	}
	if len(userLocales) == 0 {
		return New(LangEnglish)
	}
	log.Printf("detected user locale: %s", userLocales[0])
	return New(userLocales[0])
}

// Lang returns the resolved language code.
func (catalog *Catalog) Lang() string {
	if catalog == nil {
		return LangEnglish
	}
	return catalog.lang
}

// T translates key, returning the key itself when no translation exists.
func (catalog *Catalog) T(key string) string {
	if translated, ok := translations[key][catalog.Lang()]; ok {
		return translated
	}
	if translated, ok := translations[key][LangEnglish]; ok {
		return translated
	}
	return key
}

// Notice returns the title and body for a phase-change notice such as "long_break".
func (catalog *Catalog) Notice(kind string) (string, string) {
	return catalog.T("notice." + kind + ".title"), catalog.T("notice." + kind + ".body")
}

// Mode returns the display name of a mode such as "short_break".
func (catalog *Catalog) Mode(mode string) string {
	return catalog.T("mode." + mode)
}

func normalize(lang string) string {
	lang = strings.ToLower(strings.TrimSpace(lang))
	if strings.HasPrefix(lang, LangPortuguese) {
		return LangPortuguese
	}
	return LangEnglish
}

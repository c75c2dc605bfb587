package api

// Language is the `language` query value accepted by localised endpoints.
type Language string

//goland:noinspection GoUnusedConst
const (
	ArabicLanguage               Language = "ar"
	GermanLanguage               Language = "de"
	EnglishLanguage              Language = "en"
	SpanishLanguage              Language = "es"
	LatinAmericanSpanishLanguage Language = "es-419"
	FrenchLanguage               Language = "fr"
	IndonesianLanguage           Language = "id"
	ItalianLanguage              Language = "it"
	JapaneseLanguage             Language = "ja"
	KoreanLanguage               Language = "ko"
	PolishLanguage               Language = "pl"
	BrazilianPortugueseLanguage  Language = "pt-BR"
	RussianLanguage              Language = "ru"
	ThaiLanguage                 Language = "th"
	TurkishLanguage              Language = "tr"
	VietnameseLanguage           Language = "vi"
	SimplifiedChineseLanguage    Language = "zh-CN"
	TraditionalChineseLanguage   Language = "zh-Hant"
)

// MatchMethod controls how search filters compare strings.
type MatchMethod string

//goland:noinspection GoUnusedConst
const (
	FullMatchMethod     MatchMethod = "full"
	ContainsMatchMethod MatchMethod = "contains"
	StartsMatchMethod   MatchMethod = "starts"
	EndsMatchMethod     MatchMethod = "ends"
)

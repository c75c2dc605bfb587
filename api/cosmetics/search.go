package cosmetics

import (
	"net/url"
	"strconv"
	"time"

	"github.com/escrow-tf/fortnite/api"
)

// SearchParams filters /v2/cosmetics/br/search. Nil filters are not sent.
// Language, SearchLanguage and MatchMethod default to English and full
// matching.
type SearchParams struct {
	Language       api.Language
	SearchLanguage api.Language
	MatchMethod    api.MatchMethod

	ID                 *string
	Type               *string
	BackendType        *string
	Rarity             *string
	DisplayRarity      *string
	BackendRarity      *string
	Name               *string
	ShortDescription   *string
	Description        *string
	Set                *string
	SetText            *string
	Series             *string
	BackendSeries      *string
	HasSmallIcon       *bool
	HasIcon            *bool
	HasFeaturedImage   *bool
	HasBackgroundImage *bool
	HasCoverArt        *bool
	HasDecal           *bool
	HasVariants        *bool
	HasGameplayTags    *bool
	GameplayTag        *string
	DynamicPakID       *string
	Added              *time.Time
	LastAppearance     *time.Time
	UnseenFor          *int
}

// Values encodes the params as the query the search endpoints take.
func (p SearchParams) Values() url.Values {
	language := p.Language
	if language == "" {
		language = api.EnglishLanguage
	}
	searchLanguage := p.SearchLanguage
	if searchLanguage == "" {
		searchLanguage = api.EnglishLanguage
	}
	matchMethod := p.MatchMethod
	if matchMethod == "" {
		matchMethod = api.FullMatchMethod
	}

	values := make(url.Values)
	values.Set("language", string(language))
	values.Set("searchLanguage", string(searchLanguage))
	values.Set("matchMethod", string(matchMethod))

	for key, value := range map[string]*string{
		"id":               p.ID,
		"type":             p.Type,
		"backendType":      p.BackendType,
		"rarity":           p.Rarity,
		"displayRarity":    p.DisplayRarity,
		"backendRarity":    p.BackendRarity,
		"name":             p.Name,
		"shortDescription": p.ShortDescription,
		"description":      p.Description,
		"set":              p.Set,
		"setText":          p.SetText,
		"series":           p.Series,
		"backendSeries":    p.BackendSeries,
		"gameplayTag":      p.GameplayTag,
		"dynamicPakId":     p.DynamicPakID,
	} {
		if value != nil {
			values.Set(key, *value)
		}
	}

	for key, value := range map[string]*bool{
		"hasSmallIcon":       p.HasSmallIcon,
		"hasIcon":            p.HasIcon,
		"hasFeaturedImage":   p.HasFeaturedImage,
		"hasBackgroundImage": p.HasBackgroundImage,
		"hasCoverArt":        p.HasCoverArt,
		"hasDecal":           p.HasDecal,
		"hasVariants":        p.HasVariants,
		"hasGameplayTags":    p.HasGameplayTags,
	} {
		if value != nil {
			values.Set(key, strconv.FormatBool(*value))
		}
	}

	for key, value := range map[string]*time.Time{
		"added":          p.Added,
		"lastAppearance": p.LastAppearance,
	} {
		if value != nil {
			values.Set(key, value.UTC().Format(time.RFC3339))
		}
	}

	if p.UnseenFor != nil {
		values.Set("unseenFor", strconv.Itoa(*p.UnseenFor))
	}
	return values
}

type searchRequest struct {
	route  string
	params SearchParams
}

func (s searchRequest) Retryable() bool {
	return true
}

func (s searchRequest) CacheTTL() time.Duration {
	return 0
}

func (s searchRequest) RequiresApiKey() bool {
	return false
}

func (s searchRequest) Path() string {
	return s.route
}

func (s searchRequest) Values() (url.Values, error) {
	return s.params.Values(), nil
}

// idsRequest asks for several br cosmetics at once as repeated id values.
type idsRequest struct {
	ids      []string
	language api.Language
}

func (i idsRequest) Retryable() bool {
	return true
}

func (i idsRequest) CacheTTL() time.Duration {
	return 0
}

func (i idsRequest) RequiresApiKey() bool {
	return false
}

func (i idsRequest) Path() string {
	return "/v2/cosmetics/br/search/ids"
}

func (i idsRequest) Values() (url.Values, error) {
	values := api.LanguageValues(i.language)
	for _, id := range i.ids {
		values.Add("id", id)
	}
	return values, nil
}

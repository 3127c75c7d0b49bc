package sitedoc

import (
	"encoding/json"
	"reflect"

	"trainerhub-app/internal/domain/media"
)

// Document is the single aggregate holding all editable site content and
// configuration. It is stored as one JSON value and replaced wholesale on
// publish; individual sections are never persisted independently.
type Document struct {
	General      General             `json:"general"`
	Navigation   []NavItem           `json:"navigation"`
	Services     []Service           `json:"services"`
	Gallery      []GalleryItem       `json:"gallery"`
	Posts        []Post              `json:"posts"`
	FAQ          []FAQItem           `json:"faq"`
	SEO          map[string]PageMeta `json:"seo"`
	Appearance   Appearance          `json:"appearance"`
	Integrations Integrations        `json:"integrations"`
	Legal        Legal               `json:"legal"`
	Assistant    Assistant           `json:"assistant"`
}

type General struct {
	SiteName  string             `json:"site_name"`
	Tagline   string             `json:"tagline"`
	Logo      media.EncodedImage `json:"logo,omitempty"`
	HeroImage media.EncodedImage `json:"hero_image,omitempty"`
	Email     string             `json:"email"`
	Phone     string             `json:"phone,omitempty"`
	Address   string             `json:"address,omitempty"`
	Instagram string             `json:"instagram,omitempty"`
	Facebook  string             `json:"facebook,omitempty"`
	YouTube   string             `json:"youtube,omitempty"`
}

type NavItem struct {
	Label string `json:"label"`
	Path  string `json:"path"`
}

type Service struct {
	ID            string             `json:"id"`
	Title         string             `json:"title"`
	Description   string             `json:"description,omitempty"`
	PriceCents    int64              `json:"price_cents,omitempty"`
	Currency      string             `json:"currency,omitempty"`
	StripePriceID string             `json:"stripe_price_id,omitempty"`
	Image         media.EncodedImage `json:"image,omitempty"`
	Featured      bool               `json:"featured,omitempty"`
}

type GalleryItem struct {
	ID       string             `json:"id"`
	Image    media.EncodedImage `json:"image"`
	Caption  string             `json:"caption,omitempty"`
	Category string             `json:"category,omitempty"`
}

type Post struct {
	ID          string             `json:"id"`
	Slug        string             `json:"slug"`
	Title       string             `json:"title"`
	Excerpt     string             `json:"excerpt,omitempty"`
	Body        string             `json:"body"`
	Thumbnail   media.EncodedImage `json:"thumbnail,omitempty"`
	PublishedAt string             `json:"published_at,omitempty"`
	Draft       bool               `json:"draft,omitempty"`
}

type FAQItem struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

type PageMeta struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Keywords    string `json:"keywords,omitempty"`
}

type Appearance struct {
	PrimaryColor   string `json:"primary_color"`
	SecondaryColor string `json:"secondary_color,omitempty"`
	Font           string `json:"font,omitempty"`
	DarkMode       bool   `json:"dark_mode,omitempty"`
}

type Integrations struct {
	AnalyticsID   string `json:"analytics_id,omitempty"`
	ContactTo     string `json:"contact_to,omitempty"`
	CalendlyURL   string `json:"calendly_url,omitempty"`
	CheckoutOn    bool   `json:"checkout_on,omitempty"`
	CookieConsent bool   `json:"cookie_consent,omitempty"`
}

type Legal struct {
	PrivacyPolicy string `json:"privacy_policy,omitempty"`
	Terms         string `json:"terms,omitempty"`
	Imprint       string `json:"imprint,omitempty"`
}

type Assistant struct {
	Enabled      bool   `json:"enabled"`
	Model        string `json:"model,omitempty"`
	SystemPrompt string `json:"system_prompt,omitempty"`
	Greeting     string `json:"greeting,omitempty"`
}

// Default returns the built-in document used when the store has nothing to
// offer. It gives the admin a site to log into rather than an error page.
func Default() *Document {
	return &Document{
		General: General{
			SiteName: "TrainerHub",
			Tagline:  "Personal training that meets you where you are",
			Email:    "hello@trainerhub.example",
		},
		Navigation: []NavItem{
			{Label: "Home", Path: "/"},
			{Label: "Services", Path: "/services"},
			{Label: "Gallery", Path: "/gallery"},
			{Label: "Blog", Path: "/blog"},
			{Label: "Contact", Path: "/contact"},
		},
		Services: []Service{
			{ID: "starter", Title: "Starter Session", Description: "One-on-one intro session and movement assessment.", PriceCents: 4900, Currency: "eur"},
			{ID: "monthly", Title: "Monthly Coaching", Description: "Four sessions per month plus a tailored plan.", PriceCents: 19900, Currency: "eur", Featured: true},
		},
		FAQ: []FAQItem{
			{Question: "Do I need prior gym experience?", Answer: "No. Every plan starts from your current level."},
		},
		SEO: map[string]PageMeta{
			"home": {Title: "TrainerHub — Personal Training", Description: "Certified personal training, online and in person."},
		},
		Appearance: Appearance{
			PrimaryColor:   "#16a34a",
			SecondaryColor: "#0f172a",
			Font:           "Inter",
		},
		Legal: Legal{},
		Assistant: Assistant{
			Enabled:      false,
			Model:        "gpt-4o-mini",
			SystemPrompt: "You are the assistant of a personal fitness trainer. Answer questions about training services, availability and general fitness. Be brief and friendly.",
			Greeting:     "Hi! Ask me anything about training with us.",
		},
	}
}

// Clone returns a deep copy. The copy never aliases slices or maps of the
// receiver, so a working copy can be mutated without leaking into the
// published document.
func (d *Document) Clone() *Document {
	raw, err := json.Marshal(d)
	if err != nil {
		// Document is a plain data aggregate; marshal cannot fail for it.
		panic("sitedoc: marshal document: " + err.Error())
	}
	var out Document
	if err := json.Unmarshal(raw, &out); err != nil {
		panic("sitedoc: unmarshal document: " + err.Error())
	}
	return &out
}

// Equal reports structural equality, field by field. Used for dirty
// detection instead of comparing serialized bytes so map key order can
// never produce a false difference.
func (d *Document) Equal(other *Document) bool {
	if d == nil || other == nil {
		return d == other
	}
	return reflect.DeepEqual(d, other)
}

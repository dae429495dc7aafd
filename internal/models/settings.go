package models

// SiteSettings is the singleton holding branding, SEO, ads, contact and admin data.
type SiteSettings struct {
	SiteName       string `json:"siteName"`
	LogoURL        string `json:"logoUrl"`
	PrimaryColor   string `json:"primaryColor"`
	SecondaryColor string `json:"secondaryColor"`
	FontFamily     string `json:"fontFamily"`

	HeroTitle    string `json:"heroTitle"`
	HeroSubtitle string `json:"heroSubtitle"`
	HeroImage    string `json:"heroImage"`

	SEOTitle       string `json:"seoTitle"`
	SEODescription string `json:"seoDescription"`
	SEOKeywords    string `json:"seoKeywords"`
	CanonicalURL   string `json:"canonicalUrl"`
	OGImage        string `json:"ogImage"`
	AllowIndexing  bool   `json:"allowIndexing"`

	Ads            Ads          `json:"ads"`
	SocialLinks    []SocialLink `json:"socialLinks"`
	Contact        Contact      `json:"contact"`
	BlogCategories []string     `json:"blogCategories"`
	DealCategories []string     `json:"dealCategories"`

	AdminEmail    string `json:"adminEmail"`
	AdminPassword string `json:"adminPassword"`
}

// Ads toggles advertising and carries the raw banner snippets.
type Ads struct {
	Enabled       bool   `json:"enabled"`
	HeaderBanner  string `json:"headerBanner"`
	SidebarBanner string `json:"sidebarBanner"`
}

// Contact is the public postal/phone/email block.
type Contact struct {
	Address string `json:"address"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
}

// SocialLink points at one social profile.
type SocialLink struct {
	Platform string `json:"platform"`
	URL      string `json:"url"`
}

// Public returns a copy without the admin credentials.
func (s SiteSettings) Public() SiteSettings {
	out := s.Clone()
	out.AdminEmail = ""
	out.AdminPassword = ""
	return out
}

// Clone returns a copy that shares no slices with s.
func (s SiteSettings) Clone() SiteSettings {
	out := s
	out.SocialLinks = append([]SocialLink(nil), s.SocialLinks...)
	out.BlogCategories = append([]string(nil), s.BlogCategories...)
	out.DealCategories = append([]string(nil), s.DealCategories...)
	return out
}

// SettingsPatch is a partial update of SiteSettings. Nil fields are left untouched;
// Ads and Contact are merged field by field, slices are replaced wholesale.
type SettingsPatch struct {
	SiteName       *string `json:"siteName,omitempty"`
	LogoURL        *string `json:"logoUrl,omitempty"`
	PrimaryColor   *string `json:"primaryColor,omitempty"`
	SecondaryColor *string `json:"secondaryColor,omitempty"`
	FontFamily     *string `json:"fontFamily,omitempty"`

	HeroTitle    *string `json:"heroTitle,omitempty"`
	HeroSubtitle *string `json:"heroSubtitle,omitempty"`
	HeroImage    *string `json:"heroImage,omitempty"`

	SEOTitle       *string `json:"seoTitle,omitempty"`
	SEODescription *string `json:"seoDescription,omitempty"`
	SEOKeywords    *string `json:"seoKeywords,omitempty"`
	CanonicalURL   *string `json:"canonicalUrl,omitempty"`
	OGImage        *string `json:"ogImage,omitempty"`
	AllowIndexing  *bool   `json:"allowIndexing,omitempty"`

	Ads            *AdsPatch     `json:"ads,omitempty"`
	SocialLinks    *[]SocialLink `json:"socialLinks,omitempty"`
	Contact        *ContactPatch `json:"contact,omitempty"`
	BlogCategories *[]string     `json:"blogCategories,omitempty"`
	DealCategories *[]string     `json:"dealCategories,omitempty"`

	AdminEmail    *string `json:"adminEmail,omitempty"`
	AdminPassword *string `json:"adminPassword,omitempty"`
}

// AdsPatch is a partial update of Ads.
type AdsPatch struct {
	Enabled       *bool   `json:"enabled,omitempty"`
	HeaderBanner  *string `json:"headerBanner,omitempty"`
	SidebarBanner *string `json:"sidebarBanner,omitempty"`
}

// ContactPatch is a partial update of Contact.
type ContactPatch struct {
	Address *string `json:"address,omitempty"`
	Phone   *string `json:"phone,omitempty"`
	Email   *string `json:"email,omitempty"`
}

// Apply merges the patch into s.
func (p SettingsPatch) Apply(s *SiteSettings) {
	setString(&s.SiteName, p.SiteName)
	setString(&s.LogoURL, p.LogoURL)
	setString(&s.PrimaryColor, p.PrimaryColor)
	setString(&s.SecondaryColor, p.SecondaryColor)
	setString(&s.FontFamily, p.FontFamily)
	setString(&s.HeroTitle, p.HeroTitle)
	setString(&s.HeroSubtitle, p.HeroSubtitle)
	setString(&s.HeroImage, p.HeroImage)
	setString(&s.SEOTitle, p.SEOTitle)
	setString(&s.SEODescription, p.SEODescription)
	setString(&s.SEOKeywords, p.SEOKeywords)
	setString(&s.CanonicalURL, p.CanonicalURL)
	setString(&s.OGImage, p.OGImage)
	if p.AllowIndexing != nil {
		s.AllowIndexing = *p.AllowIndexing
	}
	if p.Ads != nil {
		p.Ads.Apply(&s.Ads)
	}
	if p.SocialLinks != nil {
		s.SocialLinks = append([]SocialLink(nil), (*p.SocialLinks)...)
	}
	if p.Contact != nil {
		p.Contact.Apply(&s.Contact)
	}
	setStrings(&s.BlogCategories, p.BlogCategories)
	setStrings(&s.DealCategories, p.DealCategories)
	setString(&s.AdminEmail, p.AdminEmail)
	setString(&s.AdminPassword, p.AdminPassword)
}

// Apply merges the patch into a.
func (p AdsPatch) Apply(a *Ads) {
	if p.Enabled != nil {
		a.Enabled = *p.Enabled
	}
	setString(&a.HeaderBanner, p.HeaderBanner)
	setString(&a.SidebarBanner, p.SidebarBanner)
}

// Apply merges the patch into c.
func (p ContactPatch) Apply(c *Contact) {
	setString(&c.Address, p.Address)
	setString(&c.Phone, p.Phone)
	setString(&c.Email, p.Email)
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}

func setFloat(dst *float64, v *float64) {
	if v != nil {
		*dst = *v
	}
}

func setStrings(dst *[]string, v *[]string) {
	if v != nil {
		*dst = append([]string(nil), (*v)...)
	}
}

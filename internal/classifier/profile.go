package classifier

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// PracticeArea is one legal service category. Areas are matched in the
// order they appear in the profile, so the slice order is significant.
type PracticeArea struct {
	Key         string `yaml:"key"`
	Description string `yaml:"description"`
}

// Contact holds the firm's public contact details used in replies.
type Contact struct {
	Phone   string `yaml:"phone"`
	Email   string `yaml:"email"`
	Hours   string `yaml:"hours"`
	Address string `yaml:"address"`
}

// Profile is the firm knowledge the classifier replies from. It is built
// once at startup and read-only afterwards, so handlers can share it
// across concurrent requests without locking.
type Profile struct {
	Areas   []PracticeArea `yaml:"practice_areas"`
	Contact Contact        `yaml:"contact"`
}

// DefaultProfile returns the built-in firm profile.
func DefaultProfile() *Profile {
	return &Profile{
		Areas: []PracticeArea{
			{Key: "corporate", Description: "Corporate and Commercial Law — entity formation, contracts, M&A, governance."},
			{Key: "litigation", Description: "Civil and Commercial Litigation — disputes, arbitration, and mediation."},
			{Key: "ip", Description: "Intellectual Property — trademarks, copyrights, licensing, brand protection."},
			{Key: "employment", Description: "Employment Law — policies, compliance, investigations, disputes."},
			{Key: "real estate", Description: "Real Estate — transactions, leases, development, and financing."},
		},
		Contact: Contact{
			Phone:   "(555) 214-0199",
			Email:   "hello@lexora.law",
			Hours:   "Mon–Fri, 9am–6pm",
			Address: "100 Market Street, Suite 500",
		},
	}
}

// LoadProfile reads a firm profile from a YAML file. An empty path returns
// the built-in defaults; fields missing from the file fall back to them.
func LoadProfile(path string) (*Profile, error) {
	def := DefaultProfile()
	if path == "" {
		return def, nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read firm profile: %w", err)
	}
	var p Profile
	if err := yaml.Unmarshal(b, &p); err != nil {
		return nil, fmt.Errorf("failed to parse firm profile: %w", err)
	}
	if len(p.Areas) == 0 {
		p.Areas = def.Areas
	}
	if p.Contact.Phone == "" {
		p.Contact.Phone = def.Contact.Phone
	}
	if p.Contact.Email == "" {
		p.Contact.Email = def.Contact.Email
	}
	if p.Contact.Hours == "" {
		p.Contact.Hours = def.Contact.Hours
	}
	if p.Contact.Address == "" {
		p.Contact.Address = def.Contact.Address
	}
	return &p, nil
}

// Package credentials holds the static credential vault contents.
package credentials

import "verichain/internal/domain"

var vault = []domain.Credential{
	{
		Title:       "Identity Passport",
		Status:      "Verified",
		Issuer:      "Government Authority",
		Date:        "2024-01-15",
		Description: "Official government-issued identity document with biometric verification",
		Type:        "government",
	},
	{
		Title:       "Education Degree",
		Status:      "Verified",
		Issuer:      "Stanford University",
		Date:        "2023-06-20",
		Description: "Bachelor of Science in Computer Science with honors",
		Type:        "education",
	},
	{
		Title:       "Professional License",
		Status:      "Verified",
		Issuer:      "Tech Certification Board",
		Date:        "2024-03-10",
		Description: "Certified blockchain developer with smart contract specialization",
		Type:        "professional",
	},
	{
		Title:       "Medical Records",
		Status:      "Pending",
		Issuer:      "Healthcare Provider",
		Date:        "2024-09-14",
		Description: "Encrypted medical history and vaccination records",
		Type:        "medical",
	},
}

// All returns a copy of the vault in display order.
func All() []domain.Credential {
	out := make([]domain.Credential, len(vault))
	copy(out, vault)
	return out
}

// ByType returns the credentials of one type.
func ByType(kind string) []domain.Credential {
	var out []domain.Credential
	for _, c := range vault {
		if c.Type == kind {
			out = append(out, c)
		}
	}
	return out
}

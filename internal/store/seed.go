package store

import "time"

// Built-in data served on first run and whenever stored data cannot be used.

func defaultDocuments(now time.Time) []Document {
	ms := now.UnixMilli()
	return []Document{
		{
			ID:          "1",
			Title:       "Bakı Dövlət Universiteti - Bakalavr",
			Description: "İnformasiya Texnologiyaları üzrə fərqlənmə diplomu.",
			ImageURL:    "https://picsum.photos/seed/diploma1/800/600",
			Category:    CategoryDiploma,
			Status:      StatusVisible,
			CreatedAt:   ms - 1000000,
		},
		{
			ID:          "2",
			Title:       "Google Data Analytics Professional",
			Description: "Data analitikası üzrə beynəlxalq dərəcəli sertifikat.",
			ImageURL:    "https://picsum.photos/seed/cert1/800/600",
			Category:    CategoryCertificate,
			Status:      StatusVisible,
			CreatedAt:   ms - 500000,
		},
	}
}

func defaultServices(now time.Time) []Service {
	ms := now.UnixMilli()
	return []Service{
		{
			ID:          "1",
			Title:       "CV və portfolio hazırlanması",
			Description: "Diplom və sertifikatlarınız əsasında peşəkar CV və onlayn portfolio.",
			Highlights:  []string{"Fərdi dizayn", "Azərbaycan və ingilis dillərində", "3 iş günü ərzində"},
			CreatedAt:   ms - 1000000,
		},
		{
			ID:          "2",
			Title:       "Karyera məsləhəti",
			Description: "İş axtarışı, müsahibəyə hazırlıq və sertifikat seçimi üzrə fərdi görüş.",
			Highlights:  []string{"Onlayn və ya əyani", "60 dəqiqəlik sessiya"},
			CreatedAt:   ms - 500000,
		},
	}
}

func defaultMessages(time.Time) []Message { return []Message{} }

// DefaultCredentials is the built-in admin pair used while no credentials are stored.
var DefaultCredentials = Credentials{Username: "admin", Password: "admin123"}

func defaultCredentials(time.Time) Credentials { return DefaultCredentials }

package counseling

func amina() Counselor {
	return Counselor{
		ID:             "counselor-001",
		Name:           "Dr. Amina Ibrahim",
		Title:          "International Education Specialist",
		Specialties:    []string{"South Africa Universities", "Ghana Universities", "Medical Programs", "Scholarship Applications"},
		Countries:      []string{"South Africa", "Ghana", "Rwanda"},
		Languages:      []string{"English", "Hausa", "Arabic"},
		AvailableToday: true,
		Price: map[ConsultationTypeID]int64{
			ConsultationVideo:   15000,
			ConsultationChat:    8000,
			ConsultationPackage: 50000,
		},
		Availability: Availability{
			Timezone:         "WAT",
			WorkingHours:     WorkingHours{Start: 9, End: 17},
			UnavailableDates: []string{"2024-01-15", "2024-01-22"},
			BookedSlots:      []string{"2024-01-16T10:00", "2024-01-16T14:00", "2024-01-17T11:00"},
		},
	}
}

func michael() Counselor {
	return Counselor{
		ID:             "counselor-002",
		Name:           "Michael Okonkwo",
		Title:          "Engineering Education Consultant",
		Specialties:    []string{"Engineering Programs", "Rwanda Universities", "STEM Fields", "Technology Programs"},
		Countries:      []string{"Rwanda", "Ghana", "South Africa"},
		AvailableToday: false,
		Price: map[ConsultationTypeID]int64{
			ConsultationVideo:   12000,
			ConsultationChat:    7000,
			ConsultationPackage: 45000,
		},
		Availability: Availability{
			Timezone:     "WAT",
			WorkingHours: WorkingHours{Start: 10, End: 18},
			BookedSlots:  []string{"2024-01-17T12:00", "2024-01-17T15:00", "2024-01-18T10:00"},
		},
	}
}

func joseph() Counselor {
	return Counselor{
		ID:             "counselor-004",
		Name:           "Dr. Joseph Mwangi",
		Title:          "Academic Planning Specialist",
		Specialties:    []string{"Academic Planning", "Graduate Programs", "Research Opportunities", "PhD Applications"},
		Countries:      []string{"Rwanda", "South Africa", "Ghana", "Kenya"},
		AvailableToday: false,
		Price: map[ConsultationTypeID]int64{
			ConsultationVideo:   16000,
			ConsultationChat:    9000,
			ConsultationPackage: 55000,
		},
		Availability: Availability{
			Timezone:     "CAT",
			WorkingHours: WorkingHours{Start: 8, End: 17},
			BookedSlots:  []string{"2024-01-16T09:00"},
		},
	}
}

func catalog() []Counselor {
	return []Counselor{amina(), michael(), joseph()}
}

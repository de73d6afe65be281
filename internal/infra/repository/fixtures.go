package repository

import domain "github.com/BruksfildServices01/educonnect-booking/internal/domain/counseling"

// CounselorFixtures is the launch catalog. It backs StaticCatalog and seeds
// an empty counselors table.
func CounselorFixtures() []domain.Counselor {
	return []domain.Counselor{
		{
			ID:            "counselor-001",
			Name:          "Dr. Amina Ibrahim",
			Image:         "/images/counselors/amina.jpg",
			Title:         "International Education Specialist",
			Rating:        4.9,
			ReviewCount:   124,
			Experience:    "8+ years",
			Location:      "Lagos, Nigeria",
			Bio:           "Dr. Ibrahim has successfully guided over 500 Nigerian students to secure admissions at top African universities. She specializes in medical and health science programs with particular expertise in South African and Ghanaian institutions.",
			Verified:      true,
			Achievements:  []string{"500+ Students Placed", "Medical Programs Expert", "Scholarship Specialist"},
			NextAvailable: "Today, 2:00 PM",

			Specialties:    []string{"South Africa Universities", "Ghana Universities", "Medical Programs", "Scholarship Applications"},
			Countries:      []string{"South Africa", "Ghana", "Rwanda"},
			Languages:      []string{"English", "Hausa", "Arabic"},
			AvailableToday: true,

			Price: map[domain.ConsultationTypeID]int64{
				domain.ConsultationVideo:   15000,
				domain.ConsultationChat:    8000,
				domain.ConsultationPackage: 50000,
			},
			Availability: domain.Availability{
				Timezone:         "WAT",
				WorkingHours:     domain.WorkingHours{Start: 9, End: 17},
				UnavailableDates: []string{"2024-01-15", "2024-01-22"},
				BookedSlots:      []string{"2024-01-16T10:00", "2024-01-16T14:00", "2024-01-17T11:00"},
			},
		},
		{
			ID:            "counselor-002",
			Name:          "Michael Okonkwo",
			Image:         "/images/counselors/michael.jpg",
			Title:         "Engineering Education Consultant",
			Rating:        4.8,
			ReviewCount:   98,
			Experience:    "6+ years",
			Location:      "Abuja, Nigeria",
			Bio:           "Michael has extensive experience in engineering education consulting. He previously worked as an admissions advisor at the University of Rwanda and has helped place students in top engineering programs across Africa.",
			Verified:      true,
			Achievements:  []string{"Ex-University Advisor", "Engineering Expert", "100+ STEM Placements"},
			NextAvailable: "Tomorrow, 10:00 AM",

			Specialties:    []string{"Engineering Programs", "Rwanda Universities", "STEM Fields", "Technology Programs"},
			Countries:      []string{"Rwanda", "Ghana", "South Africa"},
			Languages:      []string{"English", "Igbo"},
			AvailableToday: false,

			Price: map[domain.ConsultationTypeID]int64{
				domain.ConsultationVideo:   12000,
				domain.ConsultationChat:    7000,
				domain.ConsultationPackage: 45000,
			},
			Availability: domain.Availability{
				Timezone:         "WAT",
				WorkingHours:     domain.WorkingHours{Start: 10, End: 18},
				UnavailableDates: []string{"2024-01-18", "2024-01-25"},
				BookedSlots:      []string{"2024-01-17T12:00", "2024-01-17T15:00", "2024-01-18T10:00"},
			},
		},
		{
			ID:            "counselor-003",
			Name:          "Grace Adeyemi",
			Image:         "/images/counselors/grace.jpg",
			Title:         "Scholarship & Financial Aid Expert",
			Rating:        4.7,
			ReviewCount:   113,
			Experience:    "5+ years",
			Location:      "Ibadan, Nigeria",
			Bio:           "Grace specializes in scholarship and financial aid consulting. She has helped students secure over $2 million in scholarships and grants for studying at African universities. Her expertise covers merit-based and need-based funding opportunities.",
			Verified:      true,
			Achievements:  []string{"$2M+ Scholarships Secured", "Financial Aid Expert", "Business Programs Specialist"},
			NextAvailable: "Today, 4:30 PM",

			Specialties:    []string{"Scholarship Applications", "Financial Aid", "Business Programs", "Study Abroad Funding"},
			Countries:      []string{"Ghana", "South Africa", "Rwanda"},
			Languages:      []string{"English", "Yoruba"},
			AvailableToday: true,

			Price: map[domain.ConsultationTypeID]int64{
				domain.ConsultationVideo:   13000,
				domain.ConsultationChat:    8000,
				domain.ConsultationPackage: 48000,
			},
			Availability: domain.Availability{
				Timezone:         "WAT",
				WorkingHours:     domain.WorkingHours{Start: 9, End: 16},
				UnavailableDates: []string{"2024-01-20", "2024-01-27"},
				BookedSlots:      []string{"2024-01-16T11:00", "2024-01-19T14:00", "2024-01-19T15:30"},
			},
		},
		{
			ID:            "counselor-004",
			Name:          "Dr. Joseph Mwangi",
			Image:         "/images/counselors/joseph.jpg",
			Title:         "Academic Planning Specialist",
			Rating:        4.6,
			ReviewCount:   89,
			Experience:    "7+ years",
			Location:      "Kigali, Rwanda",
			Bio:           "Dr. Mwangi is an academic planning specialist with a focus on graduate-level programs. Based in Rwanda, he has unique insights into East African higher education and strong connections with universities across the continent.",
			Verified:      true,
			Achievements:  []string{"PhD Programs Expert", "Research Specialist", "East Africa Expert"},
			NextAvailable: "Tuesday, 9:00 AM",

			Specialties:    []string{"Academic Planning", "Graduate Programs", "Research Opportunities", "PhD Applications"},
			Countries:      []string{"Rwanda", "South Africa", "Ghana"},
			Languages:      []string{"English", "Kinyarwanda", "French"},
			AvailableToday: false,

			Price: map[domain.ConsultationTypeID]int64{
				domain.ConsultationVideo:   16000,
				domain.ConsultationChat:    9000,
				domain.ConsultationPackage: 55000,
			},
			Availability: domain.Availability{
				Timezone:         "CAT",
				WorkingHours:     domain.WorkingHours{Start: 8, End: 17},
				UnavailableDates: []string{"2024-01-23", "2024-01-30"},
				BookedSlots:      []string{"2024-01-16T09:00", "2024-01-17T13:00", "2024-01-18T11:30"},
			},
		},
	}
}

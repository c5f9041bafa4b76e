package utils

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/syazwaniiiii/hr-management-system/internal/domain"
	"golang.org/x/crypto/bcrypt"
)

var commonFirstNames = []string{
	"Ahmad", "Nur", "Siti", "Mohd", "Aisyah", "Farid", "Hafiz", "Zainab",
	"Amir", "Liyana", "Syafiq", "Aina", "Danish", "Fatimah", "Izzat",
	"Khairul", "Melati", "Ridzuan", "Sofia", "Zulkifli",
}

var commonLastNames = []string{
	"Abdullah", "Razif", "Ismail", "Hassan", "Rahman", "Yusof", "Omar",
	"Salleh", "Hamid", "Aziz", "Bakar", "Karim", "Mahmud", "Osman", "Zakaria",
}

func GenerateRandomMalayName() string {
	first := commonFirstNames[rand.Intn(len(commonFirstNames))]
	last := commonLastNames[rand.Intn(len(commonLastNames))]
	return first + " " + last
}

var digits = "0123456789"

// GenerateEmailFromName derives a plausible company address from a full name,
// with a digit suffix to dodge collisions between generated employees.
func GenerateEmailFromName(name string, emailDomain string) string {
	local := strings.ToLower(strings.Join(strings.Fields(name), "."))

	digitsLength := rand.Intn(3) + 1
	for i := 0; i < digitsLength; i++ {
		local += string(digits[rand.Intn(len(digits))])
	}

	return local + "@" + emailDomain
}

func GenerateRandomEmployee(password string, emailDomain string) (*domain.Employee, error) {
	name := GenerateRandomMalayName()
	passwordHash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	employee := &domain.Employee{
		Name:         name,
		Email:        GenerateEmailFromName(name, emailDomain),
		PasswordHash: string(passwordHash),
		Role:         domain.RoleEmployee,
	}

	return employee, nil
}

func GenerateRandomOTP() string {
	return fmt.Sprintf("%06d", rand.Intn(1000000))
}

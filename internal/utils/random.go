package utils

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/schedulo-dev/staff-scheduler/backend/internal/domain"
	"golang.org/x/crypto/bcrypt"
)

var commonFirstNames = []string{
	"Marco", "Luca", "Giulia", "Francesca", "Alessandro", "Chiara", "Matteo",
	"Sara", "Davide", "Elena", "Simone", "Martina", "Andrea", "Valentina",
	"Stefano", "Federica", "Giorgio", "Alessia", "Paolo", "Ilaria",
}

var commonLastNames = []string{
	"Rossi", "Russo", "Ferrari", "Esposito", "Bianchi", "Romano", "Colombo",
	"Ricci", "Marino", "Greco", "Bruno", "Gallo", "Conti", "DeLuca",
	"Mancini", "Costa", "Giordano", "Rizzo", "Lombardi", "Moretti",
}

func GenerateRandomName() string {
	first := commonFirstNames[rand.Intn(len(commonFirstNames))]
	last := commonLastNames[rand.Intn(len(commonLastNames))]
	return first + " " + last
}

var digits = "0123456789"

func GenerateEmailFromName(name string, emailDomain string) string {
	local := strings.ToLower(strings.ReplaceAll(name, " ", "."))

	digitsLength := rand.Intn(3) + 1
	for i := 0; i < digitsLength; i++ {
		local += string(digits[rand.Intn(len(digits))])
	}

	return local + "@" + emailDomain
}

func GenerateRandomOTP() string {
	return fmt.Sprintf("%06d", rand.Intn(1000000))
}

var letters = []rune("abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789!@#$%^&*")

func GenerateRandomPassword(length int) string {
	password := make([]rune, length)
	for i := range password {
		password[i] = letters[rand.Intn(len(letters))]
	}
	return string(password)
}

func GenerateRandomUser(password string, emailDomain string) (*domain.User, error) {
	name := GenerateRandomName()
	passwordHash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Name:         &name,
		Email:        GenerateEmailFromName(name, emailDomain),
		PasswordHash: string(passwordHash),
		Role:         domain.RoleEmployee,
	}

	return user, nil
}

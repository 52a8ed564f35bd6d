package pkg

import "golang.org/x/crypto/bcrypt"

const DefaultHashCost = 14

func HashPassword(password string, cost int) (string, error) {
	if cost <= 0 {
		cost = DefaultHashCost
	}
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	return BytesToString(bytes), err
}

func CheckPasswordHash(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

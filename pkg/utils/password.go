package utils

import "golang.org/x/crypto/bcrypt"

// HashAccessCode meng-hash kode akses admin saat start-up,
// biar kode aslinya tidak perlu disimpan di memori setelah itu
func HashAccessCode(code string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(code), bcrypt.DefaultCost)
	return string(bytes), err
}

// CheckAccessCode membandingkan kode inputan dengan hash
func CheckAccessCode(code, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(code))
	return err == nil
}

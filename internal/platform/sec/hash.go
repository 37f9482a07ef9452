// Copyright (c) 2026 Scripta. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package sec

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// HashKey hashes a plain-text API key using the bcrypt algorithm.
//
// The resulting hash is what gets stored in configuration; the plain key
// itself is never persisted.
func HashKey(plainTextKey string) (string, error) {
	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(plainTextKey), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("sec: failed to hash key: %w", err)
	}
	return string(hashedBytes), nil
}

// CheckKeyHash compares a plain-text API key with its hashed version.
func CheckKeyHash(plainTextKey, existingHash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(existingHash), []byte(plainTextKey))
	return err == nil
}

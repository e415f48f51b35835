package main

import (
	"fmt"
	"os"

	"srkr.edu.in/campus/security"
)

func main() {
	token, err := security.CreateIdentityToken(&security.CampusIdentity{
		Id:       1,
		UserName: "ops",
		Role:     "Administrator",
	}, os.Getenv("CAMPUS_SIGNING_SECRET"), 3600)
	if err != nil {
		fmt.Println("Error:", err)
		os.Exit(1)
	}
	fmt.Println(token)
}

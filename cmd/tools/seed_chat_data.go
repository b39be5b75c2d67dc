package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/olekukonko/tablewriter"

	"jobtalk/auth"
	"jobtalk/domain"
	"jobtalk/repositories"
)

// Seeds a local database with a small job board: one employer, two
// candidates, one job, two applications. Prints a token per user so the
// client and curl can authenticate against the seeded server.
func main() {
	dbPath := flag.String("db", "/tmp/jobtalk", "Path to badger DB")
	secret := flag.String("secret", "", "JWT signing secret (must match the server's JWT_SECRET)")
	tokenTTL := flag.Duration("ttl", 24*time.Hour, "Token validity")
	flag.Parse()

	if *secret == "" {
		log.Fatal("missing -secret")
	}

	db, err := badger.Open(badger.DefaultOptions(*dbPath).WithLogger(nil))
	if err != nil {
		log.Fatal("Error while opening Badger: ", err)
	}
	defer db.Close()

	directory := repositories.NewDirectory(db)

	users := []domain.UserSnapshot{
		{ID: "emp-1", Name: "Ada Recruiter", Email: "ada@acme.test", Role: domain.RoleEmployer},
		{ID: "cand-1", Name: "Bob Candidate", Email: "bob@mail.test", Role: domain.RoleJobSeeker},
		{ID: "cand-2", Name: "Carol Candidate", Email: "carol@mail.test", Role: domain.RoleJobSeeker},
	}
	for _, user := range users {
		if err := directory.PutUser(user, false); err != nil {
			log.Fatal("seeding user failed: ", err)
		}
	}

	job := domain.JobSnapshot{ID: "job-1", Title: "Backend Engineer", EmployerID: "emp-1"}
	if err := directory.PutJob(job); err != nil {
		log.Fatal("seeding job failed: ", err)
	}

	now := time.Now().UTC()
	applications := []domain.Application{
		{ID: "app-1", JobID: "job-1", UserID: "cand-1", Status: "pending", CreatedAt: now.Add(-48 * time.Hour)},
		{ID: "app-2", JobID: "job-1", UserID: "cand-2", Status: "reviewed", CreatedAt: now.Add(-24 * time.Hour)},
	}
	for _, application := range applications {
		if err := directory.PutApplication(application); err != nil {
			log.Fatal("seeding application failed: ", err)
		}
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"User", "Role", "Token"})
	table.SetAutoWrapText(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetBorder(false)
	table.SetTablePadding("\t")

	for _, user := range users {
		token, err := auth.GenerateToken([]byte(*secret), user.ID, user.Role, *tokenTTL)
		if err != nil {
			log.Fatal("token generation failed: ", err)
		}
		table.Append([]string{user.ID, string(user.Role), token})
	}

	fmt.Printf("Seeded %d users, 1 job, %d applications into %s\n\n",
		len(users), len(applications), *dbPath)
	table.Render()
}

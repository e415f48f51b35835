package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"gorm.io/gorm"
	attendance "srkr.edu.in/campus/attendance/core"
	"srkr.edu.in/campus/core"
	v1 "srkr.edu.in/campus/ezygo/v1"
	"srkr.edu.in/campus/utils"
)

func main() {
	dateStr := flag.String("date", "", "Date to sync (YYYY-MM-DD). Defaults to today.")
	file := flag.String("file", "", "Replay a captured payload file instead of the live fetch.")
	cutoffStr := flag.String("cutoff", "", "Morning/afternoon boundary (HH:MM). Defaults to 13:00.")
	flag.Parse()

	var targetDate time.Time
	if *dateStr != "" {
		var err error
		targetDate, err = time.Parse("2006-01-02", *dateStr)
		if err != nil {
			panic(fmt.Sprintf("Invalid date format: %v", err))
		}
	} else {
		targetDate = utils.Today()
	}

	opts := attendance.SyncOptions{
		Date:       targetDate,
		SourceFile: *file,
	}
	if *cutoffStr != "" {
		cutoff, err := attendance.ParseTimeOfDay(*cutoffStr)
		if err != nil {
			panic(fmt.Sprintf("Invalid cutoff: %v", err))
		}
		opts.Cutoff = cutoff
	}

	fmt.Printf("Syncing external attendance for date: %s\n", targetDate.Format("2006-01-02"))

	dsn := os.Getenv("DSN")
	if dsn == "" {
		dsn = "root:development@tcp(localhost:3306)/campus?parseTime=true"
	}

	dm, err := core.New(dsn, 2)
	if err != nil {
		panic(err)
	}
	defer dm.Close()

	var client *v1.EzygoClient
	if *file == "" {
		client = v1.NewEzygoClient(os.Getenv("EZYGO_URL"), os.Getenv("EZYGO_API_TOKEN"))
	}

	var res *attendance.SyncResult
	err = dm.Exec(context.Background(), func(db *gorm.DB) error {
		var err error
		res, err = attendance.SyncExternalAttendance(db, client, opts)
		return err
	})
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Done. Log %s: %s (%d updated, %d inserted, %d duplicates repaired, %d unmapped)\n",
		res.LogID, res.Status, res.RecordsUpdated, res.RecordsInserted, res.DuplicatesRepaired, res.UnmappedStudents)
}

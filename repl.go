// Copyright (c) 2026 Nhim Nguyen.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/nguyennhimbth/EVMSimulator/auth"
	"github.com/nguyennhimbth/EVMSimulator/engine"
)

// runREPL is the interactive presentation layer. It holds no decision
// logic: every rule lives in the engine, and every engine error is shown
// to the operator verbatim.
func runREPL(eng *engine.Engine, in io.Reader, out io.Writer) error {
	sc := bufio.NewScanner(in)
	fmt.Fprintln(out, "Voting system ready. Commands: status, list, vote <id>, admin, quit")

	var sess auth.Session
	var isAdmin bool

	for {
		if isAdmin {
			fmt.Fprint(out, "admin> ")
		} else {
			fmt.Fprint(out, "> ")
		}
		if !sc.Scan() {
			return sc.Err()
		}
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}
		cmd, args := fields[0], fields[1:]

		switch cmd {
		case "quit", "exit":
			return nil

		case "status":
			if eng.VotingStatus() {
				fmt.Fprintln(out, "Voting is OPEN")
			} else {
				fmt.Fprintln(out, "Voting is CLOSED")
			}

		case "list":
			for _, c := range eng.ListCandidates() {
				fmt.Fprintf(out, "%3d. %s\n", c.ID, c.Name)
			}

		case "vote":
			id, err := argID(args)
			if err != nil {
				fmt.Fprintln(out, err)
				continue
			}
			if err := eng.CastVote(id); err != nil {
				fmt.Fprintln(out, "vote rejected:", err)
				continue
			}
			fmt.Fprintln(out, "Vote recorded. Thank you.")

		case "admin":
			fmt.Fprint(out, "password: ")
			if !sc.Scan() {
				return sc.Err()
			}
			s, err := eng.AdminAuthenticate(sc.Text())
			if err != nil {
				fmt.Fprintln(out, "login failed:", err)
				continue
			}
			sess, isAdmin = s, true
			fmt.Fprintln(out, "Admin commands: open, close, add <name>, remove <id>, rename <id> <name>, results, reset, passwd, back")

		case "back":
			isAdmin = false

		case "open":
			adminOnly(out, isAdmin, func() error { return eng.AdminOpen(sess) })

		case "close":
			adminOnly(out, isAdmin, func() error { return eng.AdminClose(sess) })

		case "add":
			adminOnly(out, isAdmin, func() error {
				id, err := eng.AdminAddCandidate(sess, strings.Join(args, " "))
				if err == nil {
					fmt.Fprintf(out, "added candidate %d\n", id)
				}
				return err
			})

		case "remove":
			id, err := argID(args)
			if err != nil {
				fmt.Fprintln(out, err)
				continue
			}
			adminOnly(out, isAdmin, func() error { return eng.AdminRemoveCandidate(sess, id) })

		case "rename":
			if len(args) < 2 {
				fmt.Fprintln(out, "usage: rename <id> <name>")
				continue
			}
			id, err := strconv.Atoi(args[0])
			if err != nil {
				fmt.Fprintln(out, "invalid candidate id")
				continue
			}
			adminOnly(out, isAdmin, func() error {
				return eng.AdminRenameCandidate(sess, id, strings.Join(args[1:], " "))
			})

		case "results":
			adminOnly(out, isAdmin, func() error {
				res, err := eng.AdminViewResults(sess)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "TOTAL VOTES: %d\n", res.TotalVotes)
				for _, row := range res.Rows {
					fmt.Fprintf(out, "%3d. %-30s %6d  %5.1f%%\n", row.Rank, row.Name, row.VoteCount, row.Percent)
				}
				return nil
			})

		case "reset":
			if !isAdmin {
				fmt.Fprintln(out, "admin login required")
				continue
			}
			fmt.Fprint(out, "re-enter password to confirm reset: ")
			if !sc.Scan() {
				return sc.Err()
			}
			if err := eng.AdminResetVotes(sess, sc.Text()); err != nil {
				fmt.Fprintln(out, "reset refused:", err)
				continue
			}
			fmt.Fprintln(out, "All votes cleared.")

		case "passwd":
			if !isAdmin {
				fmt.Fprintln(out, "admin login required")
				continue
			}
			fmt.Fprint(out, "new password: ")
			if !sc.Scan() {
				return sc.Err()
			}
			if err := eng.AdminChangePassword(sess, sc.Text()); err != nil {
				fmt.Fprintln(out, "password change failed:", err)
				continue
			}
			fmt.Fprintln(out, "Password changed.")

		default:
			fmt.Fprintln(out, "unknown command:", cmd)
		}
	}
}

func adminOnly(out io.Writer, isAdmin bool, fn func() error) {
	if !isAdmin {
		fmt.Fprintln(out, "admin login required")
		return
	}
	if err := fn(); err != nil {
		fmt.Fprintln(out, "error:", err)
	}
}

func argID(args []string) (int, error) {
	if len(args) != 1 {
		return 0, fmt.Errorf("expected exactly one candidate id")
	}
	id, err := strconv.Atoi(args[0])
	if err != nil {
		return 0, fmt.Errorf("invalid candidate id %q", args[0])
	}
	return id, nil
}

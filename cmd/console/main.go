package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"time"

	"kasira.com/kasira/console"
	"kasira.com/kasira/infrastructure/devops"
	"kasira.com/kasira/utils"
)

// Admin console over the subscription registry. Read-only; provisioning
// goes through the billing system.
func main() {
	domain := flag.String("domain", "", "check the subscription of one location host")
	flag.Parse()

	db, err := console.Connect()
	if err != nil {
		log.Fatal(err)
	}

	now := time.Now()

	if *domain != "" {
		sub, err := console.FindSubscriptionByDomain(db, *domain)
		if err != nil {
			log.Fatal(err)
		}
		if sub == nil {
			fmt.Printf("no subscription for %s\n", *domain)
			return
		}
		fmt.Printf("%s (%s): %s, %d registers, expires %s, last synced %s\n",
			sub.Domain,
			sub.Owner.Name,
			utils.FormatBoolean(sub.Active(now), "active", "inactive"),
			sub.Registers,
			sub.ExpiredAt.Format("2006-01-02"),
			utils.Format(sub.SyncedAt))
		return
	}

	owners, err := console.GetOwners(db)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("%d owners\n", len(owners))
	for _, o := range owners {
		fmt.Printf("  %-12s %s <%s>\n", o.Code, o.Name, o.Email)
	}

	subs, err := console.GetSubscriptions(db)
	if err != nil {
		log.Fatal(err)
	}

	// Cross-check against the routing config: a licensed domain with no
	// location entry will never resolve to a schema.
	locations, err := devops.LoadLocationConfig(context.Background())
	if err != nil {
		fmt.Printf("[WARN] location config unavailable: %v\n", err)
	}

	fmt.Printf("%d subscriptions\n", len(subs))
	for _, sub := range subs {
		status := utils.FormatBoolean(sub.Active(now), "active", "inactive")
		entry := utils.Find(locations, func(l devops.LocationEntry) bool {
			return l.Host == sub.Domain
		})
		routed := utils.FormatBoolean(entry != nil, "", " [NOT ROUTED]")
		fmt.Printf("  %-28s %-8s %s%s\n", sub.Domain, status, sub.Edition, routed)
	}
}

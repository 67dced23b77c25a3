package queryset_test

import (
	"bytes"
	"fmt"
	"log"
	"strings"

	"github.com/hupe1980/queryset"
	"github.com/hupe1980/queryset/codec"
)

const usersJSON = `[
	{"id": 1, "name": "John Doe", "profile": {"active": true, "kudos": 42},
	 "invoices": [{"amount": 100, "date": "13/12/2019"}, {"amount": 100, "date": "17/11/2019"}]},
	{"pk": 2, "name": "Jane Smith", "profile": {"active": false, "kudos": 100},
	 "invoices": [{"amount": 500, "date": "15/03/2019"}, {"amount": 1000, "date": "18/05/2019"}]},
	{"pk": 3, "name": "Admin", "profile": {"active": true, "kudos": 1000}}
]`

func loadUsers() *queryset.QuerySet {
	qs, err := queryset.Load(strings.NewReader(usersJSON))
	if err != nil {
		log.Fatal(err)
	}
	return qs
}

// Example_filter demonstrates nested paths and lookups.
func Example_filter() {
	users := loadUsers()

	active := users.Filter(queryset.Query{"profile__active": true})
	for _, v := range active.All() {
		name, _ := v.Field("name")
		fmt.Println(name)
	}

	// Several queries are OR-ed.
	either := users.Filter(
		queryset.Query{"name__istartswith": "jane"},
		queryset.Query{"invoices__date__lt": "01/12/2019"},
	)
	fmt.Println(either.Count())
	// Output:
	// John Doe
	// Admin
	// 1
}

// Example_exclude demonstrates excluding records.
func Example_exclude() {
	users := loadUsers()

	rest := users.Exclude(queryset.Query{"pk__in": []int{1, 3}})
	v, _ := rest.First()
	name, _ := v.Field("name")
	fmt.Println(rest.Count(), name)
	// Output: 1 Jane Smith
}

// Example_orderBy demonstrates multi-field ordering. The last field is the
// primary key.
func Example_orderBy() {
	users := loadUsers()

	users.OrderBy("name", "profile__active")
	for _, name := range users.ValuesList("name").All() {
		fmt.Println(name)
	}
	// Output:
	// Admin
	// John Doe
	// Jane Smith
}

// Example_aggregate demonstrates aggregates over nested arrays.
func Example_aggregate() {
	users := loadUsers()

	fmt.Println(users.Sum("invoices__amount"))
	fmt.Println(users.Avg("profile__kudos"))

	latest, _ := users.Max("invoices__date")
	fmt.Println(latest)
	// Output:
	// 1700
	// 380.6666666666667
	// 13/12/2019
}

// Example_get demonstrates lookups by identity.
func Example_get() {
	users := loadUsers()

	v, ok := users.Get("2")
	name, _ := v.Field("name")
	fmt.Println(ok, name)

	_, ok = users.Get(42)
	fmt.Println(ok)
	// Output:
	// true Jane Smith
	// false
}

// Example_dump demonstrates compressed serialization.
func Example_dump() {
	users := loadUsers()
	opt := queryset.WithCompression(codec.CompressionZSTD)

	packed := queryset.FromRecords(users.Records(), opt)

	var buf bytes.Buffer
	if err := packed.Dump(&buf); err != nil {
		log.Fatal(err)
	}

	restored, err := queryset.Load(&buf, opt)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(restored.Count(), restored.Sum("invoices__amount"))
	// Output: 3 1700
}

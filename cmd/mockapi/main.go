package main

import (
	"flag"
	"log"
	"net/http"
	"os"

	"warranty-tui/mockapi"
)

func main() {
	addr := flag.String("addr", "", "Listen address (defaults to MOCKAPI_ADDR or :8080)")
	flag.Parse()

	listen := *addr
	if listen == "" {
		listen = os.Getenv("MOCKAPI_ADDR")
	}
	if listen == "" {
		listen = ":8080"
	}

	srv := mockapi.NewServer()
	log.Printf("mockapi listening on %s (demo logins: admin/admin, staff/staff, customer/customer)", listen)
	if err := http.ListenAndServe(listen, srv.Router()); err != nil {
		log.Fatalf("server error: %v", err)
	}
}

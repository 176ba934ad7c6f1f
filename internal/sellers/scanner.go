package sellers

import "github.com/storefront-labs/olist-api/pkg/repository"

func scanSeller(s repository.Scanner) (Seller, error) {
	var sel Seller
	err := s.Scan(&sel.ID, &sel.ZipCodePrefix, &sel.City, &sel.State)
	return sel, err
}

package customers

import "github.com/storefront-labs/olist-api/pkg/repository"

func scanCustomer(s repository.Scanner) (Customer, error) {
	var c Customer
	err := s.Scan(&c.ID, &c.UniqueID, &c.ZipCodePrefix, &c.City, &c.State, &c.CreatedAt)
	return c, err
}

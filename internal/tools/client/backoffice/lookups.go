package backoffice

import (
	"context"

	"bitbucket.org/crgw/reservation-wizard/internal/schema"
	"github.com/google/go-querystring/query"
)

type findPackagesQuery struct {
	CountryID int `url:"countryId"`
	CityID    int `url:"cityId"`
}

// ListCountriesWithCities returns every country offering packages, each with
// its cities.
func (c *Client) ListCountriesWithCities(ctx context.Context) ([]schema.CountryWithCities, *schema.BackendResponseError) {
	destinations := []schema.CountryWithCities{}

	err := c.get(ctx, schema.ListDestinations, c.baseURL+"/destinations", &destinations)
	if err != nil {
		return nil, err
	}

	return destinations, nil
}

// FindPackagesByCountryAndCity returns the sellable packages for one
// (country, city) pair, hotels and date window included.
func (c *Client) FindPackagesByCountryAndCity(ctx context.Context, countryID int, cityID int) ([]schema.PackageSummary, *schema.BackendResponseError) {
	values, _ := query.Values(findPackagesQuery{
		CountryID: countryID,
		CityID:    cityID,
	})

	packages := []schema.PackageSummary{}

	err := c.get(ctx, schema.FindPackages, c.baseURL+"/packages/findByCountryAndCity?"+values.Encode(), &packages)
	if err != nil {
		return nil, err
	}

	return packages, nil
}

// ListAgencies returns every registered travel agency.
func (c *Client) ListAgencies(ctx context.Context) ([]schema.Agency, *schema.BackendResponseError) {
	agencies := []schema.Agency{}

	err := c.get(ctx, schema.ListAgencies, c.baseURL+"/agencies", &agencies)
	if err != nil {
		return nil, err
	}

	return agencies, nil
}

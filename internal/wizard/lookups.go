package wizard

import (
	"context"
	"fmt"
	"time"

	"bitbucket.org/crgw/reservation-wizard/internal/schema"
	"bitbucket.org/crgw/reservation-wizard/internal/tools/caching"
	"github.com/redis/go-redis/v9"
)

const lookupTTL = 5 * time.Minute

// BackofficeLookups is the slice of the back-office client the lookup
// service needs.
type BackofficeLookups interface {
	ListCountriesWithCities(ctx context.Context) ([]schema.CountryWithCities, *schema.BackendResponseError)
	FindPackagesByCountryAndCity(ctx context.Context, countryID int, cityID int) ([]schema.PackageSummary, *schema.BackendResponseError)
	ListAgencies(ctx context.Context) ([]schema.Agency, *schema.BackendResponseError)
}

// Lookups serves the option lists the wizard steps offer, caching them in
// redis. A backend failure degrades to an empty list; the console shows no
// options rather than an error wall.
type Lookups struct {
	client BackofficeLookups
	cache  *caching.Cacher
}

func NewLookups(client BackofficeLookups, redisClient *redis.Client) *Lookups {
	return &Lookups{
		client: client,
		cache:  caching.NewRedisCache(redisClient),
	}
}

func (l *Lookups) Destinations(ctx context.Context) []schema.CountryWithCities {
	destinations := []schema.CountryWithCities{}
	if l.cache.Fetch(ctx, "lookup:destinations", &destinations) {
		return destinations
	}

	destinations, err := l.client.ListCountriesWithCities(ctx)
	if err != nil {
		return []schema.CountryWithCities{}
	}

	l.cache.Store(ctx, "lookup:destinations", destinations, lookupTTL)

	return destinations
}

func (l *Lookups) Packages(ctx context.Context, countryID int, cityID int) []schema.PackageSummary {
	key := fmt.Sprintf("lookup:packages:%d:%d", countryID, cityID)

	packages := []schema.PackageSummary{}
	if l.cache.Fetch(ctx, key, &packages) {
		return packages
	}

	packages, err := l.client.FindPackagesByCountryAndCity(ctx, countryID, cityID)
	if err != nil {
		return []schema.PackageSummary{}
	}

	l.cache.Store(ctx, key, packages, lookupTTL)

	return packages
}

func (l *Lookups) Agencies(ctx context.Context) []schema.Agency {
	agencies := []schema.Agency{}
	if l.cache.Fetch(ctx, "lookup:agencies", &agencies) {
		return agencies
	}

	agencies, err := l.client.ListAgencies(ctx)
	if err != nil {
		return []schema.Agency{}
	}

	l.cache.Store(ctx, "lookup:agencies", agencies, lookupTTL)

	return agencies
}

// ResolveEdit loads the lookup record a selection edit refers to. Unmatched
// ids leave the corresponding pointer nil; the transition reports them.
func (l *Lookups) ResolveEdit(ctx context.Context, session *Session, edit schema.EditRequestParams) EditContext {
	resolved := EditContext{}

	switch edit.Type {
	case schema.EditSelectCountry:
		for _, country := range l.Destinations(ctx) {
			if country.CountryID == edit.CountryID {
				c := country
				resolved.Country = &c
				break
			}
		}
	case schema.EditSelectCity:
		for _, country := range l.Destinations(ctx) {
			if country.CountryID != session.Destination.CountryID {
				continue
			}

			for _, city := range country.Cities {
				if city.CityID == edit.CityID {
					c := city
					resolved.City = &c
					break
				}
			}
		}
	case schema.EditSelectPackage:
		packages := l.Packages(ctx, session.Destination.CountryID, session.Destination.CityID)
		for _, pkg := range packages {
			if pkg.PackageID == edit.PackageID {
				p := pkg
				resolved.Package = &p
				break
			}
		}
	case schema.EditSelectAgency:
		for _, agency := range l.Agencies(ctx) {
			if agency.AgencyID == edit.AgencyID {
				a := agency
				resolved.Agency = &a
				break
			}
		}
	}

	return resolved
}

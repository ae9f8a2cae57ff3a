// Package datagen generates sample operational data for the source tables.
package datagen

import (
	"time"

	"github.com/brianvoe/gofakeit/v7"
)

// Faker provides fake data generation using gofakeit.
type Faker struct {
	faker *gofakeit.Faker
}

// NewFaker creates a new Faker with a random seed.
func NewFaker() *Faker {
	return &Faker{
		faker: gofakeit.New(uint64(time.Now().UnixNano())),
	}
}

// NewFakerWithSeed creates a new Faker with a specific seed for reproducibility.
func NewFakerWithSeed(seed uint64) *Faker {
	return &Faker{
		faker: gofakeit.New(seed),
	}
}

// ProductName generates a random product name.
func (f *Faker) ProductName() string {
	return f.faker.ProductName()
}

// ProductDescription generates a random product description.
func (f *Faker) ProductDescription() string {
	return f.faker.ProductDescription()
}

// Company generates a random company name.
func (f *Faker) Company() string {
	return f.faker.Company()
}

// Name generates a random full name.
func (f *Faker) Name() string {
	return f.faker.Name()
}

// Email generates a random email address.
func (f *Faker) Email() string {
	return f.faker.Email()
}

// Phone generates a random phone number.
func (f *Faker) Phone() string {
	return f.faker.Phone()
}

// Street generates a random street address.
func (f *Faker) Street() string {
	return f.faker.Street()
}

// City generates a random city name.
func (f *Faker) City() string {
	return f.faker.City()
}

// State generates a random US state abbreviation.
func (f *Faker) State() string {
	return f.faker.StateAbr()
}

// Country generates a random country name.
func (f *Faker) Country() string {
	return f.faker.Country()
}

// Int generates a random integer in [min, max].
func (f *Faker) Int(min, max int) int {
	return f.faker.IntRange(min, max)
}

// Price generates a random price between min and max.
func (f *Faker) Price(min, max float64) float64 {
	return f.faker.Price(min, max)
}

// Bool generates a random boolean.
func (f *Faker) Bool() bool {
	return f.faker.Bool()
}

// Choose picks a random element from the given slice.
func Choose[T any](f *Faker, items []T) T {
	return items[f.Int(0, len(items)-1)]
}

package http_test

import (
	"net/http"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/you-humble/parts-inventory/internal/transport/http/middleware"
	inventoryv1 "github.com/you-humble/parts-inventory/pkg/api/inventory/v1"
)

var _ = Describe("Inventory API", func() {
	Context("health", func() {
		It("reports SERVING with the seeded counts", func() {
			resp := do(http.MethodGet, "/health", nil)
			Expect(resp.StatusCode).To(Equal(http.StatusOK))
			Expect(resp.Header.Get(middleware.RequestIDHeader)).NotTo(BeEmpty())

			got := decode[inventoryv1.Health](resp)
			Expect(got.Status).To(Equal("SERVING"))
			Expect(got.Parts).To(Equal(4))
			Expect(got.Products).To(Equal(2))
		})
	})

	Context("parts", func() {
		It("lists the seeded parts in insertion order", func() {
			resp := do(http.MethodGet, "/api/v1/parts", nil)
			Expect(resp.StatusCode).To(Equal(http.StatusOK))

			parts := decode[[]inventoryv1.Part](resp)
			Expect(parts).To(HaveLen(4))
			Expect(parts[0].Name).To(Equal("Brakes"))
			Expect(parts[0].Type).To(Equal(inventoryv1.PartTypeInHouse))
			Expect(parts[2].Type).To(Equal(inventoryv1.PartTypeOutsourced))
			Expect(parts[2].CompanyName).To(HaveValue(Equal("Saddle Works")))
		})

		It("searches by id when the query is an integer", func() {
			parts := decode[[]inventoryv1.Part](do(http.MethodGet, "/api/v1/parts/search?q=2", nil))
			Expect(parts).To(HaveLen(1))
			Expect(parts[0].Name).To(Equal("Wheel"))
		})

		It("searches by case-insensitive name fragment", func() {
			parts := decode[[]inventoryv1.Part](do(http.MethodGet, "/api/v1/parts/search?q=CHA", nil))
			Expect(parts).To(HaveLen(1))
			Expect(parts[0].Name).To(Equal("Chain"))

			none := decode[[]inventoryv1.Part](do(http.MethodGet, "/api/v1/parts/search?q=zzz", nil))
			Expect(none).To(BeEmpty())
		})

		It("creates a part with the next shared id", func() {
			resp := do(http.MethodPost, "/api/v1/parts", inventoryv1.PartRequest{
				Name: "Widget", Price: 2.5, Stock: 10, Min: 1, Max: 20,
				Type: inventoryv1.PartTypeInHouse, MachineID: ptr(5),
			})
			Expect(resp.StatusCode).To(Equal(http.StatusCreated))

			p := decode[inventoryv1.Part](resp)
			Expect(p.ID).To(Equal(7))
			Expect(p.MachineID).To(HaveValue(Equal(5)))
		})

		It("rejects a part whose inventory is outside min and max", func() {
			resp := do(http.MethodPost, "/api/v1/parts", inventoryv1.PartRequest{
				Name: "Widget", Price: 2.5, Stock: 30, Min: 1, Max: 20,
				Type: inventoryv1.PartTypeInHouse, MachineID: ptr(5),
			})
			Expect(resp.StatusCode).To(Equal(http.StatusBadRequest))
			Expect(decode[inventoryv1.Error](resp).Message).To(ContainSubstring("Inventory must be between min and max."))
		})

		It("switches the variant on update and keeps the id", func() {
			resp := do(http.MethodPut, "/api/v1/parts/1", inventoryv1.PartRequest{
				Name: "Brakes", Price: 15, Stock: 10, Min: 1, Max: 50,
				Type: inventoryv1.PartTypeOutsourced, CompanyName: "Stopper Ltd",
			})
			Expect(resp.StatusCode).To(Equal(http.StatusOK))

			p := decode[inventoryv1.Part](do(http.MethodGet, "/api/v1/parts/1", nil))
			Expect(p.ID).To(Equal(1))
			Expect(p.Type).To(Equal(inventoryv1.PartTypeOutsourced))
			Expect(p.MachineID).To(BeNil())
		})

		It("deletes a part without touching products that reference it", func() {
			Expect(do(http.MethodDelete, "/api/v1/parts/1", nil).StatusCode).To(Equal(http.StatusNoContent))
			Expect(do(http.MethodGet, "/api/v1/parts/1", nil).StatusCode).To(Equal(http.StatusNotFound))
			Expect(do(http.MethodDelete, "/api/v1/parts/1", nil).StatusCode).To(Equal(http.StatusNotFound))

			bike := decode[inventoryv1.Product](do(http.MethodGet, "/api/v1/products/5", nil))
			Expect(bike.AssociatedParts).To(HaveLen(4))
			Expect(bike.AssociatedParts[0].ID).To(Equal(1))
		})

		It("answers 400 for a non-integer id", func() {
			resp := do(http.MethodGet, "/api/v1/parts/one", nil)
			Expect(resp.StatusCode).To(Equal(http.StatusBadRequest))
			Expect(decode[inventoryv1.Error](resp).Code).To(Equal(http.StatusBadRequest))
		})
	})

	Context("products", func() {
		It("creates a product with associated parts in the given order", func() {
			resp := do(http.MethodPost, "/api/v1/products", inventoryv1.ProductRequest{
				Name: "Scooter", Price: 80, Stock: 2, Min: 1, Max: 5, PartIDs: []int{2, 1},
			})
			Expect(resp.StatusCode).To(Equal(http.StatusCreated))

			p := decode[inventoryv1.Product](resp)
			Expect(p.ID).To(Equal(7))
			Expect(p.AssociatedParts).To(HaveLen(2))
			Expect(p.AssociatedParts[0].Name).To(Equal("Wheel"))
			Expect(p.AssociatedParts[1].Name).To(Equal("Brakes"))
		})

		It("refuses unknown part ids", func() {
			resp := do(http.MethodPost, "/api/v1/products", inventoryv1.ProductRequest{
				Name: "Scooter", Price: 80, Stock: 2, Min: 1, Max: 5, PartIDs: []int{99},
			})
			Expect(resp.StatusCode).To(Equal(http.StatusNotFound))
		})

		It("adds and removes associated parts", func() {
			resp := do(http.MethodPost, "/api/v1/products/6/parts/2", nil)
			Expect(resp.StatusCode).To(Equal(http.StatusOK))
			Expect(decode[inventoryv1.Product](resp).AssociatedParts).To(HaveLen(1))

			resp = do(http.MethodDelete, "/api/v1/products/6/parts/2", nil)
			Expect(resp.StatusCode).To(Equal(http.StatusOK))
			Expect(decode[inventoryv1.Product](resp).AssociatedParts).To(BeEmpty())

			resp = do(http.MethodDelete, "/api/v1/products/6/parts/2", nil)
			Expect(resp.StatusCode).To(Equal(http.StatusNotFound))
		})

		It("refuses to delete a product that still has associated parts", func() {
			resp := do(http.MethodDelete, "/api/v1/products/5", nil)
			Expect(resp.StatusCode).To(Equal(http.StatusConflict))
			Expect(decode[inventoryv1.Error](resp).Message).To(ContainSubstring("can't delete a product with associated parts"))

			Expect(do(http.MethodDelete, "/api/v1/products/6", nil).StatusCode).To(Equal(http.StatusNoContent))
			Expect(do(http.MethodGet, "/api/v1/products/6", nil).StatusCode).To(Equal(http.StatusNotFound))
		})

		It("searches products by id or name", func() {
			byID := decode[[]inventoryv1.Product](do(http.MethodGet, "/api/v1/products/search?q=6", nil))
			Expect(byID).To(HaveLen(1))
			Expect(byID[0].Name).To(Equal("Tricycle"))

			byName := decode[[]inventoryv1.Product](do(http.MethodGet, "/api/v1/products/search?q=bike", nil))
			Expect(byName).To(HaveLen(1))
			Expect(byName[0].ID).To(Equal(5))
		})

		It("updates a product and replaces its associated parts", func() {
			resp := do(http.MethodPut, "/api/v1/products/5", inventoryv1.ProductRequest{
				Name: "Giant Bike XL", Price: 349.99, Stock: 5, Min: 1, Max: 10, PartIDs: []int{3},
			})
			Expect(resp.StatusCode).To(Equal(http.StatusOK))

			p := decode[inventoryv1.Product](do(http.MethodGet, "/api/v1/products/5", nil))
			Expect(p.Name).To(Equal("Giant Bike XL"))
			Expect(p.AssociatedParts).To(HaveLen(1))
			Expect(p.AssociatedParts[0].Name).To(Equal("Seat"))
		})
	})
})

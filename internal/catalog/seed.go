package catalog

// seedProducts is the demo catalog used when no database is configured.
// IDs ascend in insertion order; higher id = newer listing.
var seedProducts = []Product{
	{ID: 1, Name: "Smartphone X", Description: "6.5 inch OLED display, 128GB storage and a triple camera system.", Category: "Electronics", Price: 899.00, OriginalPrice: 999.00, Discount: 10, Rating: 4.5, Reviews: 234, Stock: 15, Featured: true, Image: "/images/smartphone-x.jpg"},
	{ID: 2, Name: "Laptop Pro 15", Description: "15 inch ultrabook with 16GB RAM and a 512GB SSD for work and play.", Category: "Electronics", Price: 1299.00, OriginalPrice: 1499.00, Discount: 13, Rating: 4.7, Reviews: 189, Stock: 8, Featured: true, Image: "/images/laptop-pro-15.jpg"},
	{ID: 3, Name: "Wireless Headphones", Description: "Over-ear noise cancelling headphone set with 30 hour battery life.", Category: "Electronics", Price: 199.00, OriginalPrice: 249.00, Discount: 20, Rating: 4.4, Reviews: 412, Stock: 32, Featured: false, Image: "/images/wireless-headphones.jpg"},
	{ID: 4, Name: "Smart Watch S2", Description: "Fitness tracking, heart rate monitor and a week of battery.", Category: "Electronics", Price: 249.00, OriginalPrice: 249.00, Discount: 0, Rating: 4.2, Reviews: 156, Stock: 21, Featured: false, Image: "/images/smart-watch-s2.jpg"},
	{ID: 5, Name: "Bluetooth Speaker", Description: "Portable waterproof speaker with deep bass and 12 hour playtime.", Category: "Electronics", Price: 49.00, OriginalPrice: 59.00, Discount: 17, Rating: 4.1, Reviews: 301, Stock: 44, Featured: false, Image: "/images/bluetooth-speaker.jpg"},
	{ID: 6, Name: "Denim Jacket", Description: "Classic fit denim jacket in washed indigo.", Category: "Fashion", Price: 59.00, OriginalPrice: 59.00, Discount: 0, Rating: 4.0, Reviews: 87, Stock: 26, Featured: false, Image: "/images/denim-jacket.jpg"},
	{ID: 7, Name: "Running Shoes", Description: "Lightweight road running shoes with responsive cushioning.", Category: "Fashion", Price: 89.00, OriginalPrice: 120.00, Discount: 26, Rating: 4.6, Reviews: 523, Stock: 18, Featured: true, Image: "/images/running-shoes.jpg"},
	{ID: 8, Name: "Leather Wallet", Description: "Slim bifold wallet in full grain leather with RFID blocking.", Category: "Fashion", Price: 29.00, OriginalPrice: 29.00, Discount: 0, Rating: 4.3, Reviews: 142, Stock: 60, Featured: false, Image: "/images/leather-wallet.jpg"},
	{ID: 9, Name: "Cotton T-Shirt", Description: "Soft organic cotton tee, available in six colors.", Category: "Fashion", Price: 15.00, OriginalPrice: 15.00, Discount: 0, Rating: 3.9, Reviews: 64, Stock: 120, Featured: false, Image: "/images/cotton-t-shirt.jpg"},
	{ID: 10, Name: "Polarized Sunglasses", Description: "UV400 polarized lenses in a matte black frame.", Category: "Fashion", Price: 39.00, OriginalPrice: 49.00, Discount: 20, Rating: 4.1, Reviews: 98, Stock: 35, Featured: false, Image: "/images/polarized-sunglasses.jpg"},
	{ID: 11, Name: "Coffee Maker", Description: "12 cup drip coffee maker with programmable timer.", Category: "Home", Price: 79.00, OriginalPrice: 79.00, Discount: 0, Rating: 4.4, Reviews: 267, Stock: 14, Featured: true, Image: "/images/coffee-maker.jpg"},
	{ID: 12, Name: "Air Fryer XL", Description: "5.5 quart air fryer with eight cooking presets.", Category: "Home", Price: 99.00, OriginalPrice: 129.00, Discount: 23, Rating: 4.5, Reviews: 389, Stock: 11, Featured: false, Image: "/images/air-fryer-xl.jpg"},
	{ID: 13, Name: "Table Lamp", Description: "Minimalist bedside lamp with warm dimmable light.", Category: "Home", Price: 34.00, OriginalPrice: 34.00, Discount: 0, Rating: 4.0, Reviews: 53, Stock: 40, Featured: false, Image: "/images/table-lamp.jpg"},
	{ID: 14, Name: "Throw Blanket", Description: "Chunky knit throw blanket in oatmeal, 50 by 60 inches.", Category: "Home", Price: 24.00, OriginalPrice: 32.00, Discount: 25, Rating: 4.2, Reviews: 71, Stock: 55, Featured: false, Image: "/images/throw-blanket.jpg"},
	{ID: 15, Name: "Robot Vacuum", Description: "Self-charging robot vacuum with app control and mapping.", Category: "Home", Price: 149.00, OriginalPrice: 199.00, Discount: 25, Rating: 4.3, Reviews: 214, Stock: 9, Featured: true, Image: "/images/robot-vacuum.jpg"},
	{ID: 16, Name: "Game Console Z", Description: "Next generation console with 1TB storage and 4K output.", Category: "Gaming", Price: 499.00, OriginalPrice: 499.00, Discount: 0, Rating: 4.8, Reviews: 640, Stock: 5, Featured: true, Image: "/images/game-console-z.jpg"},
	{ID: 17, Name: "Wireless Controller", Description: "Low latency wireless controller with remappable buttons.", Category: "Gaming", Price: 59.00, OriginalPrice: 69.00, Discount: 14, Rating: 4.4, Reviews: 308, Stock: 27, Featured: false, Image: "/images/wireless-controller.jpg"},
	{ID: 18, Name: "Gaming Headset", Description: "Surround sound headset with detachable boom microphone.", Category: "Gaming", Price: 79.00, OriginalPrice: 99.00, Discount: 20, Rating: 4.2, Reviews: 176, Stock: 22, Featured: false, Image: "/images/gaming-headset.jpg"},
	{ID: 19, Name: "Mechanical Keyboard", Description: "Hot-swappable mechanical keyboard with per-key RGB.", Category: "Gaming", Price: 129.00, OriginalPrice: 129.00, Discount: 0, Rating: 4.6, Reviews: 244, Stock: 16, Featured: true, Image: "/images/mechanical-keyboard.jpg"},
	{ID: 20, Name: "Gaming Mouse", Description: "Ultralight 26000 DPI gaming mouse with PTFE feet.", Category: "Gaming", Price: 49.00, OriginalPrice: 59.00, Discount: 17, Rating: 4.5, Reviews: 198, Stock: 38, Featured: false, Image: "/images/gaming-mouse.jpg"},
}

package i18n

var spanish = Translation{
	Common: Common{
		Brand:              "BuyMyProvider",
		PoweredByPrefix:    "Impulsado por",
		PoweredByHighlight: "SpiderHat × TADOS",
		SwitchToEnglish:    "Cambiar a inglés",
		SwitchToSpanish:    "Cambiar a español",
	},
	Hero: Hero{
		Headline: Headline{
			Line1Prefix:    "Conectando",
			Line1Highlight: "Compradores Confiables",
			Line2Prefix:    "con",
			Line2Highlight: "Proveedores Verificados",
		},
		Subheadline:          "BuyMyProvider conecta compradores de LATAM con proveedores chinos verificados.",
		SubheadlineHighlight: "Únete ahora para obtener acceso anticipado.",
		CTA:                  "Únete a la Lista de Espera",
		Stats: []Stat{
			{Title: "LATAM", Description: "Compradores Confiables"},
			{Title: "China", Description: "Proveedores Verificados"},
			{Title: "24/7", Description: "Soporte y Verificación"},
		},
	},
	Form: Form{
		TitlePrefix:            "Únete a la",
		TitleHighlight:         "Revolución",
		Description:            "Sé de los primeros en experimentar el futuro del abastecimiento B2B. Obtén acceso anticipado y beneficios exclusivos.",
		UserTypeLabel:          "Soy...",
		BuyerTitle:             "Soy Comprador",
		BuyerDescription:       "Busco proveedores verificados para hacer crecer mi negocio",
		SupplierTitle:          "Soy Proveedor",
		SupplierDescription:    "Listo para conectar con compradores y ampliar mi alcance",
		FullNameLabel:          "Nombre Completo *",
		FullNamePlaceholder:    "Juan Pérez",
		CompanyNameLabel:       "Nombre de la Empresa (Opcional)",
		CompanyNamePlaceholder: "Empresa Ejemplo",
		EmailLabel:             "Correo Electrónico *",
		EmailPlaceholder:       "correo@ejemplo.com",
		WhatsappLabel:          "WhatsApp *",
		WhatsappPlaceholder:    "+52 123 456 7890",
		CountryLabel:           "País / Región *",
		CountryPlaceholder:     "Selecciona tu país",
		CategoriesLabel:        "Categorías de Producto de Interés *",
		SubmitLabel:            "Únete a la Lista de Espera",
		SubmittingLabel:        "Uniéndote a la Lista...",
		ErrorMessage:           "Hubo un error al enviar el formulario. Por favor, inténtalo nuevamente.",
		CountryOptions: []Option{
			{Value: "ar", Label: "Argentina"},
			{Value: "bo", Label: "Bolivia"},
			{Value: "br", Label: "Brasil"},
			{Value: "cl", Label: "Chile"},
			{Value: "co", Label: "Colombia"},
			{Value: "cr", Label: "Costa Rica"},
			{Value: "ec", Label: "Ecuador"},
			{Value: "sv", Label: "El Salvador"},
			{Value: "gt", Label: "Guatemala"},
			{Value: "hn", Label: "Honduras"},
			{Value: "mx", Label: "México"},
			{Value: "ni", Label: "Nicaragua"},
			{Value: "pa", Label: "Panamá"},
			{Value: "py", Label: "Paraguay"},
			{Value: "pe", Label: "Perú"},
			{Value: "uy", Label: "Uruguay"},
			{Value: "ve", Label: "Venezuela"},
			{Value: "other", Label: "Otro"},
		},
		CategoryOptions: []Option{
			{Value: "electronics-technology", Label: "Electrónica y Tecnología"},
			{Value: "textiles-apparel", Label: "Textiles y Confección"},
			{Value: "home-furniture", Label: "Hogar y Muebles"},
			{Value: "industrial-equipment", Label: "Equipo Industrial"},
			{Value: "beauty-personal-care", Label: "Belleza y Cuidado Personal"},
			{Value: "food-beverages", Label: "Alimentos y Bebidas"},
			{Value: "automotive-parts", Label: "Refacciones Automotrices"},
			{Value: "sports-outdoors", Label: "Deportes y Aire Libre"},
			{Value: "toys-games", Label: "Juguetes y Juegos"},
			{Value: "other", Label: "Otro"},
		},
		Validation: ValidationMessages{
			FullName:   "El nombre debe tener al menos 2 caracteres",
			Email:      "Por favor ingresa un correo válido",
			Whatsapp:   "Por favor ingresa un número de WhatsApp válido",
			Country:    "Por favor selecciona tu país",
			Categories: "Selecciona al menos una categoría",
		},
	},
	Success: Success{
		Title:       "¡Estás en la lista!",
		Description: "Ya estás oficialmente en la lista. Te contactaremos tan pronto como BuyMyProvider abra el acceso anticipado.",
		WhatsNext:   "¿Qué sigue?",
		Steps: []string{
			"Recibirás un correo de confirmación en breve",
			"Nuestro equipo revisará tu perfil",
			"Enviaremos invitaciones de acceso anticipado en las próximas semanas",
			"Síguenos para recibir actualizaciones y contenido exclusivo",
		},
		BackHome: "Volver al Inicio",
		Contact:  "¿Preguntas? Contáctanos en",
	},
	Footer: Footer{
		Rights: "Todos los derechos reservados.",
	},
	NotFound: NotFound{
		Title:       "¡Ups! Página no encontrada",
		Description: "La página que buscas no existe.",
		CTA:         "Volver al Inicio",
	},
	Bot: Bot{
		SkipLabel:      "Omitir",
		DoneLabel:      "Listo",
		ReviewTitle:    "Revisa tus datos:",
		StartOverLabel: "Empezar de nuevo",
		BusyMessage:    "Tu registro ya se está enviando, por favor espera.",
		UseButtons:     "Por favor elige una de las opciones de abajo.",
		FixErrors:      "Por favor corrige lo siguiente:",
		NotProvided:    "-",
	},
}
